package client

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse reports a body that could not be decoded into the
// expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// HTTPError is a non-2xx response from the API. URL and Body never contain the
// API token.
type HTTPError struct {
	StatusCode int
	Reason     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, e.Reason)
}

// TransportError is a connection, DNS or timeout failure. URL never contains
// the API token.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is an error object ({"error": ...}) delivered with a 2xx status.
type APIError struct {
	Source  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Source, e.Message)
}
