package main

//
//  @title           eodpulse API
//  @version         1.0
//  @description     HTTP gateway over the EODHD financial data API.
//  @termsOfService  https://github.com/guttosm/eodpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/eodpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        query
//  @tag.description Relay of the EODHD REST endpoints
//
//  @tag.name        market-cap
//  @tag.description Market capitalization series
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/eodpulse/config"
	_ "github.com/guttosm/eodpulse/docs" // swagger docs
	"github.com/guttosm/eodpulse/internal/app"
	"github.com/guttosm/eodpulse/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the HTTP server for the given router and port.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve runs server on ln until ctx is cancelled, then shuts it down and calls
// cleanup.
//
// Returns:
//   - error: a listener failure or a shutdown that exceeded shutdownTimeout.
func serve(ctx context.Context, server *http.Server, ln net.Listener, cleanup func()) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", ln.Addr().String()).Msg("server starting")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if cleanup != nil {
		cleanup()
	}
	if err == nil {
		logger.L().Info().Msg("server exited gracefully")
	}
	return err
}

// main starts the eodpulse gateway.
//
// Flags:
//   - --port:     Port to listen on. Defaults to SERVER_PORT or 8080.
//   - --base-url: Upstream API base URL. Defaults to EODHD_BASE_URL.
//   - --timeout:  Upstream HTTP timeout in seconds. Defaults to EODHD_TIMEOUT.
func main() {
	fs := pflag.NewFlagSet("gateway", pflag.ExitOnError)
	fs.String("port", "8080", "Port for the HTTP server")
	fs.String("base-url", "", "Override base URL")
	fs.Int("timeout", 30, "HTTP timeout in seconds")
	_ = fs.Parse(os.Args[1:])

	if err := config.BindFlags(fs); err != nil {
		logger.L().Fatal().Err(err).Msg("flag binding failed")
	}
	if err := config.LoadConfig(); err != nil {
		logger.L().Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init()

	cfg := config.AppConfig
	if err := cfg.RequireToken(); err != nil {
		logger.L().Warn().Err(err).Msg("readiness will report degraded until a token is configured")
	}

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := newServer(router, cfg.Server.Port)
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.L().Fatal().Err(err).Str("addr", server.Addr).Msg("listen failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, server, ln, cleanup); err != nil {
		logger.L().Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
}
