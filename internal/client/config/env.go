package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	envAuthURL        = "QUICKCHAT_AUTH_URL"
	envRelayURL       = "QUICKCHAT_RELAY_URL"
	envDatabasePath   = "QUICKCHAT_DB_PATH"
	envRequestTimeout = "QUICKCHAT_REQUEST_TIMEOUT"
	envTimeFormat     = "QUICKCHAT_TIME_FORMAT"
	envLogLevel       = "QUICKCHAT_LOG_LEVEL"
)

// parseEnv overlays Config with QUICKCHAT_* environment variables.
//
// A .env file in the working directory is loaded first when present; it never
// overrides variables already set in the process environment. Unset or empty
// variables leave the field untouched. Panics on an unparsable timeout, like
// the JSON loader does on a broken file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString(&cfg.AuthEndpointURL, envAuthURL)
	setString(&cfg.RelayEndpointURL, envRelayURL)
	setString(&cfg.DatabasePath, envDatabasePath)
	setString(&cfg.TimeFormat, envTimeFormat)
	setString(&cfg.LogLevel, envLogLevel)

	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
