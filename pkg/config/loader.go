package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load populates cfg from environment variables using `env` struct tags.
// Defaults declared with `envDefault` apply when a variable is unset, so a
// bare environment boots the service with its development settings:
//
//	type Config struct {
//	    HTTPPort     int           `env:"HTTP_PORT" envDefault:"8080"`
//	    FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
