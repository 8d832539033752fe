// Package client is a thin HTTP client for the EODHD REST API.
//
// Every call is a single GET with the token carried in the query string. There
// is no retry, caching or pagination: a failed call is reported as is.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/eodpulse/internal/endpoint"
	"github.com/guttosm/eodpulse/internal/logger"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://eodhd.com/api"

const (
	defaultTimeout = 30 * time.Second
	redacted       = "***"
)

// Client issues requests resolved by the endpoint package.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a Client for baseURL authenticated with token. A non-positive
// timeout selects the 30s default.
func New(baseURL, token string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Query resolves q and performs the request, returning the raw body.
// Input errors from the resolver are returned before any network call.
func (c *Client) Query(ctx context.Context, q endpoint.Query) ([]byte, error) {
	req, err := endpoint.Build(q, c.token)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Do performs a resolved request.
func (c *Client) Do(ctx context.Context, r *endpoint.Request) ([]byte, error) {
	rawURL := r.URL(c.baseURL)
	safeURL := c.Redact(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: safeURL, Err: errors.New(c.Redact(err.Error()))}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.L().Debug().Str("endpoint", r.Endpoint).Str("url", safeURL).Err(unwrapURLError(err)).Msg("eodhd request failed")
		return nil, &TransportError{URL: safeURL, Err: unwrapURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: safeURL, Err: fmt.Errorf("read body: %w", err)}
	}

	logger.L().Debug().
		Str("endpoint", r.Endpoint).
		Str("url", safeURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("eodhd request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Reason:     reason(resp),
			URL:        safeURL,
			Body:       c.Redact(string(body)),
		}
	}
	return body, nil
}

// Redact replaces every occurrence of the token in s.
func (c *Client) Redact(s string) string {
	if c.token == "" {
		return s
	}
	s = strings.ReplaceAll(s, c.token, redacted)
	if esc := url.QueryEscape(c.token); esc != c.token {
		s = strings.ReplaceAll(s, esc, redacted)
	}
	return s
}

// CloseIdleConnections releases pooled connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// unwrapURLError drops the *url.Error wrapper, whose message embeds the full
// request URL and with it the token.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

func reason(resp *http.Response) string {
	r := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if r == "" {
		r = http.StatusText(resp.StatusCode)
	}
	return r
}
