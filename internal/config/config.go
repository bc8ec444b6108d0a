package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration. It is built once at startup and
// never mutated afterwards; everything that needs a setting receives the
// struct (or a field) explicitly.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":8001"`

	// DataDir is the directory containing projections.csv. The file itself
	// is produced out of band by the R pipeline.
	DataDir string `env:"DATA_DIR" envDefault:"./data_feed"`

	// Debug enables per-request logging.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// AllowedHosts lists the hostnames the server will answer for.
	// "*" disables the check.
	AllowedHosts []string `env:"ALLOWED_HOSTS" envDefault:"*"`

	// SecretKey is an opaque signing key. Nothing consumes it yet; it is
	// recognized so deployments can set it before sessions exist.
	SecretKey string `env:"SECRET_KEY"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
