package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/quickchat/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   auth backend base URL
//	-r string   relay WebSocket URL
//	-d string   SQLite database path
//	-t int      request timeout in seconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so -c/-config and any
// unknown arguments do not break parsing. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpointURL, "a", cfg.AuthEndpointURL, "auth backend base URL")
	fs.StringVar(&cfg.RelayEndpointURL, "r", cfg.RelayEndpointURL, "relay WebSocket URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
