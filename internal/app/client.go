package app

import (
	"fmt"

	"github.com/guttosm/eodpulse/config"
	"github.com/guttosm/eodpulse/internal/client"
)

// InitClient builds the upstream API client from the configuration.
//
// Behavior:
//   - Validates the base URL.
//   - Applies the configured timeout (30s when unset).
//
// A missing token is not an error here: the gateway starts and reports itself
// not ready, and every upstream call fails with 401 until one is configured.
//
// Example usage:
//
//	c, err := app.InitClient(config.AppConfig)
//	if err != nil {
//	    return err
//	}
//	defer c.CloseIdleConnections()
func InitClient(cfg config.Config) (*client.Client, error) {
	c, err := client.New(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to build api client: %w", err)
	}
	return c, nil
}

// clientOpener is an indirection used by InitializeApp; overridden in tests.
var clientOpener = InitClient
