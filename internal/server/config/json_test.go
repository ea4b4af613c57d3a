package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_LoadsFromFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr":           "www.example:9000",
		"database_dsn":            "postgres://example/notes",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "15m",
		"cors_allowed_origins":    []string{"https://aro.example"},
		"openfda_base_url":        "http://fda.local",
		"pubmed_base_url":         "http://pubmed.local",
		"proxy_timeout":           "3s",
	})

	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
	assert.Equal(t, "postgres://example/notes", cfg.DatabaseDSN)
	assert.Equal(t, "my_secret_key", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, []string{"https://aro.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://fda.local", cfg.OpenFDABaseURL)
	assert.Equal(t, "http://pubmed.local", cfg.PubMedBaseURL)
	assert.Equal(t, 3*time.Second, cfg.ProxyTimeout)
}

func Test_parseJson_PartialFileKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"secret_key": "overridden",
	})

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "overridden", cfg.SecretKey)
	assert.Equal(t, ":4000", cfg.EndpointAddr, "unset fields keep defaults")
	assert.Equal(t, 10*time.Second, cfg.ProxyTimeout)
}

func Test_parseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":4000", cfg.EndpointAddr)
}
