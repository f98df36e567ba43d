package config

import (
	"flag"
	"os"
	"time"

	"github.com/microbank/securebank/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the client service (default from Config)
//	-b string   base URL of the banking service (default from Config)
//	-t int      per-request timeout in seconds (default from Config)
//	-f string   path of the persisted session token (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-t", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ClientAPIURL, "a", cfg.ClientAPIURL, "base URL of the client service")
	fs.StringVar(&cfg.BankingAPIURL, "b", cfg.BankingAPIURL, "base URL of the banking service")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.TokenFile, "f", cfg.TokenFile, "path of the persisted session token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
