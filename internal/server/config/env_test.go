package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_Overrides(t *testing.T) {
	t.Setenv("ARONOTES_ADDR", ":7000")
	t.Setenv("ARONOTES_SECRET_KEY", "env_secret")
	t.Setenv("ARONOTES_TOKEN_VALIDITY", "45m")
	t.Setenv("ARONOTES_CORS_ORIGINS", "https://env.example")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":7000", cfg.EndpointAddr)
	assert.Equal(t, "env_secret", cfg.SecretKey)
	assert.Equal(t, 45*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, []string{"https://env.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://api.fda.gov", cfg.OpenFDABaseURL, "unset vars keep defaults")
}

func Test_parseEnv_EmptyEnvironmentIsNoop(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":4000", cfg.EndpointAddr)
	assert.Equal(t, "secretKey", cfg.SecretKey)
}
