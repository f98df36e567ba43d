// Package config loads runtime settings for the SecureBank CLI from, in
// order of increasing precedence: built-in defaults, the environment
// (including a .env file), a JSON config file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the SecureBank CLI.
//
// Fields:
//   - ClientAPIURL: base URL of the client service (auth, users, admin).
//   - BankingAPIURL: base URL of the banking service (accounts, transactions).
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenFile: path of the persisted session token; empty selects the
//     default location under the user's home directory.
type Config struct {
	ClientAPIURL   string
	BankingAPIURL  string
	RequestTimeout time.Duration
	TokenFile      string
}

// LoadDefaults populates c with sensible defaults for local development.
func (c *Config) LoadDefaults() {
	c.ClientAPIURL = "http://localhost:8080/client/api/v1"
	c.BankingAPIURL = "http://localhost:8081/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.TokenFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if provided), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
