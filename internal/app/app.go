package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/eodpulse/config"
	"github.com/guttosm/eodpulse/internal/api"
	"github.com/guttosm/eodpulse/internal/service"
)

const requestHeadroom = 5 * time.Second

// InitializeApp sets up all gateway dependencies and returns a configured Gin
// router, a cleanup function for graceful shutdown, and any initialization
// error.
//
// Responsibilities:
//   - Builds the upstream API client.
//   - Initializes the query and market-cap services.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that releases pooled connections.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	c, err := clientOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize api client: %w", err)
	}

	querySvc := service.NewQueryService(c)
	marketCapSvc := service.NewMarketCapService(c)

	handler := api.NewHandler(querySvc, marketCapSvc)

	// The compute method makes two sequential upstream calls.
	router := api.NewRouter(handler, 2*cfg.API.Timeout+requestHeadroom)

	healthHandler := api.NewHealthHandler(cfg.RequireToken)
	healthHandler.Register(router)

	cleanup := func() {
		c.CloseIdleConnections()
	}

	return router, cleanup, nil
}
