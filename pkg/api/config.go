// Package api exposes the validation engine over a small REST surface. The
// handlers are thin: they call the engine and return its results verbatim,
// never re-deriving validity or level.
package api

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the API server configuration, loaded from the environment.
type Config struct {
	Host                 string `env:"OSSA_API_HOST" envDefault:"0.0.0.0"`
	Port                 int    `env:"OSSA_API_PORT" envDefault:"8080"`
	DefaultSchemaVersion string `env:"OSSA_DEFAULT_SCHEMA_VERSION" envDefault:"1.0.0"`
}

// LoadConfig reads configuration from OSSA_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("loading API config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
