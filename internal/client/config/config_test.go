package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://localhost:7299/api", c.ServerBaseURL)
	assert.Zero(t, c.RequestTimeout, "requests are not bounded unless configured")
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, EncodingObject, c.ReferenceEncoding)
	assert.False(t, c.InsecureTLS)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults ok", mutate: func(c *Config) {}},
		{name: "id encoding ok", mutate: func(c *Config) { c.ReferenceEncoding = EncodingID }},
		{name: "bad scheme", mutate: func(c *Config) { c.ServerBaseURL = "ftp://host/api" }, wantErr: "scheme"},
		{name: "no scheme", mutate: func(c *Config) { c.ServerBaseURL = "localhost:7299" }, wantErr: "scheme"},
		{name: "bad encoding", mutate: func(c *Config) { c.ReferenceEncoding = "nested" }, wantErr: "reference encoding"},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_base_url":    "http://json-host/api",
		"request_timeout":    "20s",
		"reference_encoding": "id",
	})
	t.Setenv("USUARIOS_REQUEST_TIMEOUT", "30s")
	t.Setenv("USUARIOS_LOG_LEVEL", "debug")

	cfg := load([]string{"-c", path, "-a", "http://flag-host/api"})

	assert.Equal(t, "http://flag-host/api", cfg.ServerBaseURL, "flags beat JSON")
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout, "env beats JSON")
	assert.Equal(t, EncodingID, cfg.ReferenceEncoding, "JSON beats defaults")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval, "default kept")
}

func TestLoad_InvalidPanics(t *testing.T) {
	require.Panics(t, func() { load([]string{"-r", "nested"}) })
}
