// Package config loads runtime configuration for the quickchat CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file from the
//     working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth backend
//	-r string   WebSocket URL of the relay
//	-d string   path to the local SQLite database
//	-t int      request timeout (seconds)
//	-l string   log level
//
// Environment
//
//	QUICKCHAT_AUTH_URL, QUICKCHAT_RELAY_URL, QUICKCHAT_DB_PATH,
//	QUICKCHAT_REQUEST_TIMEOUT ("10s"), QUICKCHAT_TIME_FORMAT, QUICKCHAT_LOG_LEVEL
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds. Absent keys leave the earlier value in place:
//
//	{
//	  "auth_endpoint_url": "http://127.0.0.1:1337",
//	  "relay_endpoint_url": "ws://127.0.0.1:3000/ws",
//	  "database_path": "quickchat.db",
//	  "request_timeout": "10s",
//	  "time_format": "15:04:05",
//	  "log_level": "debug"
//	}
package config
