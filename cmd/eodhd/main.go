// Command eodhd queries one EODHD REST endpoint and prints the response.
//
// Usage:
//
//	EODHD_API_TOKEN=... eodhd --endpoint eod --symbol AAPL.US --from-date 2025-01-01
//
// Exit status is 0 on success, 1 on network or upstream failure and 2 on
// usage or input errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/guttosm/eodpulse/config"
	"github.com/guttosm/eodpulse/internal/cli"
	"github.com/guttosm/eodpulse/internal/client"
	"github.com/guttosm/eodpulse/internal/endpoint"
	"github.com/guttosm/eodpulse/internal/logger"
	"github.com/guttosm/eodpulse/internal/output"
	"github.com/guttosm/eodpulse/internal/service"
)

type options struct {
	endpoint   string
	symbol     string
	from       string
	to         string
	interval   string
	limit      int
	offset     int
	function   string
	period     int
	indicator  string
	filter     string
	symbols    string
	version    string
	filterYear int
	frequency  string
	baseURL    string
	timeout    int
	raw        bool
}

func newFlagSet(stderr io.Writer) (*pflag.FlagSet, *options) {
	o := &options{}
	fs := pflag.NewFlagSet("eodhd", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringVar(&o.endpoint, "endpoint", "", "API endpoint to query (required)")
	fs.StringVar(&o.symbol, "symbol", "", "Ticker with exchange suffix (e.g., AAPL.US) or exchange code for bulk endpoints")
	fs.StringVar(&o.from, "from-date", "", "Start date YYYY-MM-DD")
	fs.StringVar(&o.to, "to-date", "", "End date YYYY-MM-DD")
	fs.StringVar(&o.interval, "interval", "", "Intraday interval: 1m, 5m, 1h")
	fs.IntVar(&o.limit, "limit", 0, "Limit results")
	fs.IntVar(&o.offset, "offset", 0, "Offset for pagination")
	fs.StringVar(&o.function, "function", "", "Technical indicator function (sma, ema, wma, rsi, macd, stoch, cci, adx, atr, bbands)")
	fs.IntVar(&o.period, "period", 0, "Period for technical indicators")
	fs.StringVar(&o.indicator, "indicator", "", "Macro indicator code (e.g., inflation_consumer_prices_annual, gdp_current_usd)")
	fs.StringVar(&o.filter, "filter", "", "Filter for specific fields (e.g., last_close, extended for earnings)")
	fs.StringVar(&o.symbols, "symbols", "", "Comma-separated symbols for bulk-fundamentals (e.g., AAPL.US,MSFT.US)")
	fs.StringVar(&o.version, "version", "", "API version for bulk-fundamentals (e.g., 1.2)")
	fs.IntVar(&o.filterYear, "filter-year", 0, "Filter by year for UST and ESG endpoints (e.g., 2023)")
	fs.StringVar(&o.frequency, "frequency", "", "ESG reporting frequency (FY, Q1, Q2, Q3, Q4)")
	fs.StringVar(&o.baseURL, "base-url", client.DefaultBaseURL, "Override base URL")
	fs.IntVar(&o.timeout, "timeout", 30, "HTTP timeout seconds")
	fs.BoolVar(&o.raw, "raw", false, "Output raw response without JSON formatting")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Query EODHD API")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: eodhd --endpoint NAME [flags]")
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, fs.FlagUsages())
		fmt.Fprint(stderr, epilog())
	}
	return fs, o
}

func epilog() string {
	var b strings.Builder
	b.WriteString("\nSupported endpoints:\n")
	groups := endpoint.Groups()
	for _, g := range endpoint.GroupOrder() {
		fmt.Fprintf(&b, "  %-15s %s\n", string(g)+":", strings.Join(groups[g], ", "))
	}
	b.WriteString("\nThe technical endpoint requires --function.\n")
	b.WriteString("news-word-weights may have longer response times due to AI processing.\n")
	b.WriteString("\nSymbol format: {TICKER}.{EXCHANGE} (e.g., AAPL.US, MSFT.US, BMW.XETRA)\n")
	b.WriteString("For exchange-symbol-list and eod-bulk-last-day, use exchange code (e.g., US, LSE)\n")
	return b.String()
}

// query copies the flags into an endpoint query. Integer flags count only when
// given on the command line.
func (o *options) query(fs *pflag.FlagSet) endpoint.Query {
	q := endpoint.Query{
		Endpoint:  o.endpoint,
		Symbol:    o.symbol,
		From:      o.from,
		To:        o.to,
		Interval:  o.interval,
		Function:  o.function,
		Indicator: o.indicator,
		Filter:    o.filter,
		Symbols:   o.symbols,
		Version:   o.version,
		Frequency: o.frequency,
	}
	intFlag := func(name string, v int) *int {
		if !fs.Changed(name) {
			return nil
		}
		return &v
	}
	q.Limit = intFlag("limit", o.limit)
	q.Offset = intFlag("offset", o.offset)
	q.Period = intFlag("period", o.period)
	q.FilterYear = intFlag("filter-year", o.filterYear)
	return q
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)

	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cli.ExitOK
		}
		cli.Report(stderr, fmt.Errorf("%w: %v", cli.ErrUsage, err))
		return cli.ExitUsage
	}
	if opts.endpoint == "" {
		fs.Usage()
		cli.Report(stderr, fmt.Errorf("%w: --endpoint is required", cli.ErrUsage))
		return cli.ExitUsage
	}
	if _, ok := endpoint.Lookup(opts.endpoint); !ok {
		err := fmt.Errorf("%w: %s (choose from %s)", endpoint.ErrUnsupportedEndpoint, opts.endpoint, strings.Join(endpoint.Names(), ", "))
		cli.Report(stderr, err)
		return cli.ExitCode(err)
	}

	if err := config.BindFlags(fs); err != nil {
		cli.Report(stderr, err)
		return cli.ExitFailure
	}
	if err := config.LoadConfig(); err != nil {
		cli.Report(stderr, err)
		return cli.ExitCode(err)
	}
	cfg := config.AppConfig
	if err := cfg.RequireToken(); err != nil {
		cli.Report(stderr, err)
		return cli.ExitCode(err)
	}

	c, err := client.New(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout)
	if err != nil {
		err = fmt.Errorf("%w: %v", cli.ErrUsage, err)
		cli.Report(stderr, err)
		return cli.ExitCode(err)
	}
	defer c.CloseIdleConnections()

	body, err := service.NewQueryService(c).Query(ctx, opts.query(fs))
	if err != nil {
		cli.Report(stderr, err)
		return cli.ExitCode(err)
	}

	if err := output.Write(stdout, body, opts.raw); err != nil {
		cli.Report(stderr, err)
		return cli.ExitFailure
	}
	return cli.ExitOK
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
