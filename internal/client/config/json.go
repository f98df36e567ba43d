package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/microbank/securebank/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in whole seconds. Zero values are treated as "not set" and do
// not overwrite the current Config.
type JsonConfig struct {
	ClientAPIURL   string `json:"client_api_url"`
	BankingAPIURL  string `json:"banking_api_url"`
	RequestTimeout int    `json:"request_timeout"`
	TokenFile      string `json:"token_file"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// the -c or -config flags. Without the flag, nothing is loaded. Read or
// unmarshal errors panic; intended usage is defaults -> env -> parseJson ->
// parseFlags, where later stages override earlier ones.
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

	if jc.ClientAPIURL != "" {
		cfg.ClientAPIURL = jc.ClientAPIURL
	}
	if jc.BankingAPIURL != "" {
		cfg.BankingAPIURL = jc.BankingAPIURL
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
