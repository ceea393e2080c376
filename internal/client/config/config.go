package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Reference encodings for department/position on write payloads.
const (
	EncodingObject = "object"
	EncodingID     = "id"
)

// Config holds runtime settings for the usuarios CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the REST API, resource paths are appended.
//   - RequestTimeout: per-request timeout; zero disables it.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - ReferenceEncoding: "object" sends nested departamento/cargo objects,
//     "id" sends bare IdDepartamento/IdCargo fields.
//   - InsecureTLS: skip certificate verification (self-signed dev backends).
//   - LogLevel, LogFormat: slog level name and "text" or "json".
type Config struct {
	ServerBaseURL       string        `env:"SERVER_BASE_URL"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	ReferenceEncoding   string        `env:"REFERENCE_ENCODING"`
	InsecureTLS         bool          `env:"INSECURE_TLS"`
	LogLevel            string        `env:"LOG_LEVEL"`
	LogFormat           string        `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://localhost:7299/api"
	c.RequestTimeout = 0 // a slow backend is waited for
	c.OnlineCheckInterval = 3 * time.Second
	c.ReferenceEncoding = EncodingObject
	c.InsecureTLS = false
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports settings that would make the client unusable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerBaseURL)
	if err != nil {
		return fmt.Errorf("server base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server base url %q: scheme must be http or https", c.ServerBaseURL)
	}
	if c.ReferenceEncoding != EncodingObject && c.ReferenceEncoding != EncodingID {
		return fmt.Errorf("reference encoding %q: must be %q or %q", c.ReferenceEncoding, EncodingObject, EncodingID)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), .env file and environment, and command-line flags.
// Later sources take precedence over earlier ones. Errors panic, as a
// half-configured client is of no use.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, args)
	parseFlags(cfg, args)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
