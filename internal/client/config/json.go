package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/usuarios/internal/flagx"
	"github.com/dmitrijs2005/usuarios/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" from "zero", so a file only overrides what it names.
type JsonConfig struct {
	ServerBaseURL       *string         `json:"server_base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	ReferenceEncoding   *string         `json:"reference_encoding"`
	InsecureTLS         *bool           `json:"insecure_tls"`
	LogLevel            *string         `json:"log_level"`
	LogFormat           *string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config.
// Without the flag nothing happens; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlags(args).JSON
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.ReferenceEncoding != nil {
		cfg.ReferenceEncoding = *jc.ReferenceEncoding
	}
	if jc.InsecureTLS != nil {
		cfg.InsecureTLS = *jc.InsecureTLS
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
