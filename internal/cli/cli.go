// Package cli holds what the command-line tools share: exit codes and the
// rendering of errors on stderr.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/guttosm/eodpulse/config"
	"github.com/guttosm/eodpulse/internal/client"
	"github.com/guttosm/eodpulse/internal/endpoint"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// TokenHint follows the missing-token message.
const TokenHint = "Get your API token at https://eodhd.com/"

// ErrUsage reports a command line that could not be parsed.
var ErrUsage = errors.New("usage error")

// ExitCode maps err to the process exit status: 0 on success, 2 for usage and
// input errors, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage),
		errors.Is(err, endpoint.ErrInvalidInput),
		errors.Is(err, endpoint.ErrUnsupportedEndpoint),
		errors.Is(err, config.ErrMissingToken),
		errors.Is(err, config.ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Report writes err to w. HTTP errors list status, redacted URL and the
// response body on separate lines.
func Report(w io.Writer, err error) {
	var (
		httpErr      *client.HTTPError
		transportErr *client.TransportError
	)

	switch {
	case err == nil:
		return
	case errors.As(err, &httpErr):
		fmt.Fprintf(w, "HTTP Error %d: %s\n", httpErr.StatusCode, httpErr.Reason)
		fmt.Fprintf(w, "URL: %s\n", httpErr.URL)
		if httpErr.Body != "" {
			fmt.Fprintf(w, "Response: %s\n", httpErr.Body)
		}
	case errors.As(err, &transportErr):
		fmt.Fprintf(w, "Request failed: %v\n", transportErr.Err)
		fmt.Fprintf(w, "URL: %s\n", transportErr.URL)
	case errors.Is(err, config.ErrMissingToken):
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, TokenHint)
	default:
		fmt.Fprintf(w, "Error: %s\n", message(err))
	}
}

// message drops the sentinel prefix of usage and input errors, which already
// read as instructions ("--symbol is required for endpoint=eod").
func message(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{endpoint.ErrInvalidInput, ErrUsage} {
		msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
	}
	return msg
}
