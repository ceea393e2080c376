package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/usuarios/internal/flagx"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment variable read by the client.
const EnvPrefix = "USUARIOS_"

const defaultEnvFile = ".env"

// parseEnv loads the .env file (the one named by -e/-env, else ./.env when
// present) into the process environment and overlays cfg with the
// USUARIOS_* variables. Variables already set in the environment win over
// the file; unset variables leave cfg untouched.
func parseEnv(cfg *Config, args []string) {
	if err := loadEnvFile(flagx.ConfigFileFlags(args).Env); err != nil {
		panic(err)
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}

func loadEnvFile(path string) error {
	if path != "" {
		return godotenv.Load(path)
	}
	if _, err := os.Stat(defaultEnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(defaultEnvFile)
}
