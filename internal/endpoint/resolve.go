package endpoint

import (
	"fmt"
	"net/url"
	"strings"
)

// Query holds the user inputs of a single request. Zero values mean "not
// given"; optional integers are pointers so that 0 stays distinguishable.
type Query struct {
	Endpoint   string
	Symbol     string
	From       string
	To         string
	Interval   string
	Limit      *int
	Offset     *int
	Function   string
	Period     *int
	Indicator  string
	Filter     string
	Symbols    string
	Version    string
	FilterYear *int
	Frequency  string
}

// Request is a fully resolved request: a path relative to the API base URL and
// its ordered query parameters.
type Request struct {
	Endpoint string
	Path     string
	Params   Params
}

// URL joins the request onto baseURL.
func (r *Request) URL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/") + r.Path
	if r.Params.Len() > 0 {
		u += "?" + r.Params.Encode()
	}
	return u
}

// Resolve returns the URL path for endpoint name.
//
// Endpoints without a symbol requirement resolve to their fixed path whatever
// symbol is passed. The technical endpoint additionally requires an indicator
// function.
func Resolve(name, symbol, function string) (string, error) {
	d, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEndpoint, name)
	}
	if !d.RequiresSymbol {
		return d.Path, nil
	}
	if symbol == "" {
		return "", fmt.Errorf("%w: --symbol is required for endpoint=%s", ErrInvalidInput, name)
	}
	if name == "technical" && function == "" {
		return "", fmt.Errorf("%w: --function is required for endpoint=technical (e.g., sma, ema, rsi)", ErrInvalidInput)
	}
	return strings.Replace(d.Path, symbolPlaceholder, url.PathEscape(symbol), 1), nil
}

// Build resolves q into a Request authenticated with token.
//
// Parameters are assembled in layers: the token and output format first, the
// generic flag mapping next, then the endpoint rules, which may rename or drop
// keys inserted earlier.
func Build(q Query, token string) (*Request, error) {
	path, err := Resolve(q.Endpoint, q.Symbol, q.Function)
	if err != nil {
		return nil, err
	}
	d, _ := Lookup(q.Endpoint)

	req := &Request{Endpoint: q.Endpoint, Path: path}
	p := &req.Params
	p.Set("api_token", token)
	p.Set("fmt", "json")

	setString(p, "from", q.From)
	setString(p, "to", q.To)
	setInt(p, "limit", q.Limit)
	setInt(p, "offset", q.Offset)
	setString(p, "interval", q.Interval)
	setString(p, "function", q.Function)
	setInt(p, "period", q.Period)
	setString(p, "indicator", q.Indicator)
	setString(p, "filter", q.Filter)

	for _, rule := range d.Rules {
		if err := rule(p, q); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func setString(p *Params, key, v string) {
	if v != "" {
		p.Set(key, v)
	}
}

func setInt(p *Params, key string, v *int) {
	if v != nil {
		p.SetInt(key, *v)
	}
}
