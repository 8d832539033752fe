package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/guttosm/eodpulse/internal/client"
)

// Environment keys.
const (
	KeyToken      = "EODHD_API_TOKEN"
	KeyBaseURL    = "EODHD_BASE_URL"
	KeyTimeout    = "EODHD_TIMEOUT"
	KeyServerPort = "SERVER_PORT"
)

var (
	// ErrMissingToken reports that no API token is configured.
	ErrMissingToken = errors.New(KeyToken + " environment variable is not set")
	// ErrInvalidConfig reports missing or out-of-range settings.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the application configuration loaded from flags, environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	EODHD_API_TOKEN=demo
//	EODHD_BASE_URL=https://eodhd.com/api
//	EODHD_TIMEOUT=30
//	SERVER_PORT=8080
type Config struct {
	API    APIConfig    // Upstream API settings
	Server ServerConfig // HTTP gateway settings
}

// APIConfig holds the upstream API settings.
type APIConfig struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the gateway listens on (e.g., "8080")
}

// AppConfig is the globally accessible configuration instance, populated by
// LoadConfig.
var AppConfig Config

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"base-url": KeyBaseURL,
	"timeout":  KeyTimeout,
	"port":     KeyServerPort,
}

// BindFlags lets explicitly set flags override environment values. Flags the
// set does not define are ignored.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig populates AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//  4. Flags registered through BindFlags and set on the command line.
//
// A missing token is not an error here; callers that need one use
// RequireToken.
func LoadConfig() error {
	viper.SetDefault(KeyBaseURL, client.DefaultBaseURL)
	viper.SetDefault(KeyTimeout, 30)
	viper.SetDefault(KeyServerPort, "8080")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		API: APIConfig{
			Token:   viper.GetString(KeyToken),
			BaseURL: viper.GetString(KeyBaseURL),
			Timeout: time.Duration(viper.GetInt(KeyTimeout)) * time.Second,
		},
		Server: ServerConfig{
			Port: viper.GetString(KeyServerPort),
		},
	}

	return validateConfig(AppConfig)
}

// RequireToken returns ErrMissingToken when no token is configured.
func (c Config) RequireToken() error {
	if c.API.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// validateConfig reports every missing or invalid field at once.
func validateConfig(cfg Config) error {
	var missing []string

	if cfg.API.BaseURL == "" {
		missing = append(missing, KeyBaseURL)
	}
	if cfg.API.Timeout <= 0 {
		missing = append(missing, KeyTimeout)
	}
	if cfg.Server.Port == "" {
		missing = append(missing, KeyServerPort)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing or invalid %v", ErrInvalidConfig, missing)
	}
	return nil
}
