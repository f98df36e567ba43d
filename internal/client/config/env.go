package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over .env entries (godotenv does not override them).
//
// Recognized variables:
//
//	SECUREBANK_CLIENT_API_URL   base URL of the client service
//	SECUREBANK_BANKING_API_URL  base URL of the banking service
//	SECUREBANK_REQUEST_TIMEOUT  per-request timeout in seconds
//	SECUREBANK_TOKEN_FILE       path of the persisted session token
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SECUREBANK_CLIENT_API_URL"); v != "" {
		cfg.ClientAPIURL = v
	}
	if v := os.Getenv("SECUREBANK_BANKING_API_URL"); v != "" {
		cfg.BankingAPIURL = v
	}
	if v := os.Getenv("SECUREBANK_REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SECUREBANK_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
}
