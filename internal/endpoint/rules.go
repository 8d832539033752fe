package endpoint

import "fmt"

// Rule rewrites the parameter set of a request after the generic parameters
// have been inserted. Rules run in declaration order; later rules see the
// effect of earlier ones.
type Rule func(p *Params, q Query) error

// SymbolAs sends a present symbol under key.
func SymbolAs(key string) Rule {
	return func(p *Params, q Query) error {
		if q.Symbol != "" {
			p.Set(key, q.Symbol)
		}
		return nil
	}
}

// RequireSymbolAs sends the symbol under key and fails with msg when it is
// absent.
func RequireSymbolAs(key, msg string) Rule {
	return func(p *Params, q Query) error {
		if q.Symbol == "" {
			return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
		}
		p.Set(key, q.Symbol)
		return nil
	}
}

// SymbolReplacesRange sends a present symbol under key and drops the date
// range, which the endpoint does not accept together with symbols.
func SymbolReplacesRange(key string) Rule {
	return func(p *Params, q Query) error {
		if q.Symbol == "" {
			return nil
		}
		p.Set(key, q.Symbol)
		p.Del("from")
		p.Del("to")
		return nil
	}
}

// Rename moves a generic parameter to an endpoint-specific key.
func Rename(from, to string) Rule {
	return func(p *Params, _ Query) error {
		p.Rename(from, to)
		return nil
	}
}

// OptionalString sends a non-empty value under key.
func OptionalString(get func(Query) string, key string) Rule {
	return func(p *Params, q Query) error {
		if v := get(q); v != "" {
			p.Set(key, v)
		}
		return nil
	}
}

// OptionalInt sends a set integer under key.
func OptionalInt(get func(Query) *int, key string) Rule {
	return func(p *Params, q Query) error {
		if v := get(q); v != nil {
			p.SetInt(key, *v)
		}
		return nil
	}
}
