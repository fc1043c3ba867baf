package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "XSHARE_"

// dotenvPath is read before the environment. Variables already set in the
// process are not overridden by it.
var dotenvPath = ".env"

// parseEnv overlays cfg with XSHARE_* variables. Unset variables leave the
// field unchanged.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
