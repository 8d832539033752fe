package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/guttosm/eodpulse/internal/domain/dto"
)

const testToken = "mc-test-token"

// fakeProvider answers the three endpoints the command uses.
type fakeProvider struct {
	eod      string
	shares   string
	hist     string
	status   int
	requests int32
}

func (f *fakeProvider) start(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.requests, 1)
		if f.status != 0 {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte("upstream says no"))
			return
		}
		switch {
		case strings.HasPrefix(r.URL.Path, "/eod/"):
			_, _ = w.Write([]byte(f.eod))
		case strings.HasPrefix(r.URL.Path, "/fundamentals/"):
			_, _ = w.Write([]byte(f.shares))
		case strings.HasPrefix(r.URL.Path, "/historical-market-cap/"):
			_, _ = w.Write([]byte(f.hist))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func baseArgs(url string, extra ...string) []string {
	args := []string{"--symbol", "AAPL.US", "--from-date", "2025-01-01", "--to-date", "2025-01-31", "--base-url", url}
	return append(args, extra...)
}

func TestRun_ComputeJSON(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", testToken)
	p := &fakeProvider{
		eod:    `[{"date":"2025-01-02","close":100},{"date":"2025-01-03","close":102}]`,
		shares: `{"SharesOutstanding":1000}`,
	}
	url := p.start(t)

	code, stdout, stderr := runCLI(t, baseArgs(url)...)
	if code != 0 {
		t.Fatalf("want exit 0, got %d (%s)", code, stderr)
	}
	var out dto.MarketCapResponse
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, stdout)
	}
	s := out.Summary
	if s.Symbol != "AAPL.US" || s.Method != "compute" || s.DataPoints != 2 || s.ChangePct != 2 {
		t.Fatalf("summary %+v", s)
	}
	if s.StartMarketCap != "$100,000" || s.EndMarketCap != "$102,000" || s.MinMarketCap != "$100,000" || s.MaxMarketCap != "$102,000" {
		t.Fatalf("formatted values %+v", s)
	}
	if out.Series[1].MarketCap != 102000 || *out.Series[1].SharesOutstanding != 1000 {
		t.Fatalf("series %+v", out.Series)
	}
	if !strings.HasPrefix(stdout, "{\n  \"summary\": {\n    \"symbol\": \"AAPL.US\"") {
		t.Fatalf("summary must come first, in field order:\n%s", stdout)
	}
}

func TestRun_APICSV(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", testToken)
	p := &fakeProvider{hist: `{"1":{"date":"2025-01-13","value":3200000000000},"0":{"date":"2025-01-06","value":3100000000000}}`}
	url := p.start(t)

	code, stdout, stderr := runCLI(t, baseArgs(url, "--method", "api", "--csv")...)
	if code != 0 {
		t.Fatalf("want exit 0, got %d (%s)", code, stderr)
	}
	want := "date,close,shares_outstanding,market_cap\n" +
		"2025-01-06,,,3100000000000\n" +
		"2025-01-13,,,3200000000000\n"
	if stdout != want {
		t.Fatalf("csv:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestRun_Failures(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", testToken)

	cases := []struct {
		name     string
		provider *fakeProvider
		args     []string
		code     int
		stderr   string
		requests int32
	}{
		{
			name:     "no prices",
			provider: &fakeProvider{eod: `[]`},
			code:     1,
			stderr:   "Error: no price data returned for AAPL.US in 2025-01-01..2025-01-31",
			requests: 1,
		},
		{
			name:     "no shares",
			provider: &fakeProvider{eod: `[{"date":"2025-01-02","close":100}]`, shares: `{}`},
			code:     1,
			stderr:   "could not retrieve SharesOutstanding for AAPL.US",
			requests: 2,
		},
		{
			name:     "error object",
			provider: &fakeProvider{eod: `{"error":"Ticker not found"}`},
			code:     1,
			stderr:   "Error: EOD API error: Ticker not found",
			requests: 1,
		},
		{
			name:     "http error",
			provider: &fakeProvider{status: http.StatusForbidden},
			code:     1,
			stderr:   "HTTP Error 403: Forbidden",
			requests: 1,
		},
		{
			name:     "empty api series",
			provider: &fakeProvider{hist: `[]`},
			args:     []string{"--method", "api"},
			code:     1,
			stderr:   "Error: no data points produced",
			requests: 1,
		},
		{
			name:     "bad method",
			provider: &fakeProvider{},
			args:     []string{"--method", "guess"},
			code:     2,
			stderr:   "--method must be",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			url := tc.provider.start(t)
			code, stdout, stderr := runCLI(t, baseArgs(url, tc.args...)...)
			if code != tc.code {
				t.Fatalf("want exit %d, got %d (%s)", tc.code, code, stderr)
			}
			if stdout != "" {
				t.Fatalf("stdout must stay empty, got %q", stdout)
			}
			if !strings.Contains(stderr, tc.stderr) {
				t.Fatalf("stderr %q does not contain %q", stderr, tc.stderr)
			}
			if strings.Contains(stderr, testToken) {
				t.Fatalf("token leaked: %s", stderr)
			}
			if n := atomic.LoadInt32(&tc.provider.requests); n != tc.requests {
				t.Fatalf("want %d requests, got %d", tc.requests, n)
			}
		})
	}
}

func TestRun_RequiredFlagsAndToken(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", testToken)
	code, _, stderr := runCLI(t, "--symbol", "AAPL.US")
	if code != 2 || !strings.Contains(stderr, "--from-date") || !strings.Contains(stderr, "--to-date") {
		t.Fatalf("code=%d stderr=%s", code, stderr)
	}

	t.Setenv("EODHD_API_TOKEN", "")
	p := &fakeProvider{}
	url := p.start(t)
	code, _, stderr = runCLI(t, baseArgs(url)...)
	if code != 2 || !strings.Contains(stderr, "EODHD_API_TOKEN environment variable is not set") {
		t.Fatalf("code=%d stderr=%s", code, stderr)
	}
	if p.requests != 0 {
		t.Fatalf("no request expected without token")
	}
}
