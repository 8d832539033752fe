// Command marketcap prints a market-capitalization series for one symbol.
//
// Usage:
//
//	marketcap --symbol AAPL.US --from-date 2025-01-01 --to-date 2025-03-31
//	marketcap --symbol MSFT.US --from-date 2023-01-01 --to-date 2023-12-31 --method api
//	marketcap --symbol BMW.XETRA --from-date 2024-01-01 --to-date 2024-12-31 --csv
//
// The compute method (default) multiplies each daily close by the current
// shares-outstanding figure and works for any exchange. The api method relays
// the provider's weekly series, available for US tickers from 2019.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/guttosm/eodpulse/config"
	"github.com/guttosm/eodpulse/internal/cli"
	"github.com/guttosm/eodpulse/internal/client"
	"github.com/guttosm/eodpulse/internal/logger"
	"github.com/guttosm/eodpulse/internal/marketcap"
	"github.com/guttosm/eodpulse/internal/service"
)

type options struct {
	symbol  string
	from    string
	to      string
	method  string
	csv     bool
	timeout int
	baseURL string
}

func newFlagSet(stderr io.Writer) (*pflag.FlagSet, *options) {
	o := &options{}
	fs := pflag.NewFlagSet("marketcap", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringVar(&o.symbol, "symbol", "", "Ticker with exchange (e.g. AAPL.US) (required)")
	fs.StringVar(&o.from, "from-date", "", "Start date YYYY-MM-DD (required)")
	fs.StringVar(&o.to, "to-date", "", "End date YYYY-MM-DD (required)")
	fs.StringVar(&o.method, "method", marketcap.MethodCompute,
		"'compute' = EOD price * shares (any exchange, daily); 'api' = dedicated /historical-market-cap endpoint (US only, weekly)")
	fs.BoolVar(&o.csv, "csv", false, "Output as CSV instead of JSON")
	fs.IntVar(&o.timeout, "timeout", 30, "HTTP timeout in seconds")
	fs.StringVar(&o.baseURL, "base-url", client.DefaultBaseURL, "Override base URL")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Calculate daily market-cap time series using EODHD API")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: marketcap --symbol SYMBOL --from-date YYYY-MM-DD --to-date YYYY-MM-DD [flags]")
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, fs.FlagUsages())
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Symbol format: {TICKER}.{EXCHANGE}  (e.g. AAPL.US, BMW.XETRA, VOD.LSE)")
	}
	return fs, o
}

func (o *options) validate() error {
	var missing []string
	for _, f := range []struct{ name, v string }{{"--symbol", o.symbol}, {"--from-date", o.from}, {"--to-date", o.to}} {
		if f.v == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: the following arguments are required: %v", cli.ErrUsage, missing)
	}
	if !marketcap.ValidMethod(o.method) {
		return fmt.Errorf("%w: --method must be %q or %q, got %q", cli.ErrUsage, marketcap.MethodCompute, marketcap.MethodAPI, o.method)
	}
	return nil
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
	if err := opts.validate(); err != nil {
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

	resp, err := service.NewMarketCapService(c).Series(ctx, service.MarketCapRequest{
		Symbol: opts.symbol,
		From:   opts.from,
		To:     opts.to,
		Method: opts.method,
	})
	if err != nil {
		cli.Report(stderr, err)
		return cli.ExitCode(err)
	}

	if opts.csv {
		err = marketcap.WriteCSV(stdout, resp.Series)
	} else {
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		err = enc.Encode(resp)
	}
	if err != nil {
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
