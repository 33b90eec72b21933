package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/quickchat/internal/flagx"
	"github.com/dmitrijs2005/quickchat/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer-free
// zero values mean "not set" and leave the runtime Config unchanged.
type JsonConfig struct {
	AuthEndpointURL  string         `json:"auth_endpoint_url"`
	RelayEndpointURL string         `json:"relay_endpoint_url"`
	DatabasePath     string         `json:"database_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	TimeFormat       string         `json:"time_format"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag it does nothing. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpointURL != "" {
		cfg.AuthEndpointURL = jc.AuthEndpointURL
	}
	if jc.RelayEndpointURL != "" {
		cfg.RelayEndpointURL = jc.RelayEndpointURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TimeFormat != "" {
		cfg.TimeFormat = jc.TimeFormat
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
