package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv overlays fields tagged `env` with EnvPrefix-ed environment
// variables. Unset variables leave the field as is.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func parseEnv(cfg *Config) {
	if err := ParseEnv(cfg); err != nil {
		panic(err)
	}
}
