package config

import "time"

// Config holds runtime settings for the quickchat CLI.
//
// Fields:
//   - AuthEndpointURL: base URL of the authentication backend.
//   - RelayEndpointURL: WebSocket URL of the message relay.
//   - DatabasePath: SQLite file holding persisted client state.
//   - RequestTimeout: bound for auth requests and relay dials.
//   - TimeFormat: Go layout used to stamp outgoing messages (time of day).
//   - LogLevel: debug, info, warn or error.
type Config struct {
	AuthEndpointURL  string
	RelayEndpointURL string
	DatabasePath     string
	RequestTimeout   time.Duration
	TimeFormat       string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthEndpointURL = "http://127.0.0.1:1337"
	c.RelayEndpointURL = "ws://127.0.0.1:3000/ws"
	c.DatabasePath = "quickchat.db"
	c.RequestTimeout = 10 * time.Second
	c.TimeFormat = "3:04:05 PM"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (.env included), a JSON file and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
