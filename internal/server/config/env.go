package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// EnvConfig is a DTO for the environment overlay, mirroring JsonConfig.
// Durations are accepted in Go syntax ("30s", "15m").
type EnvConfig struct {
	EndpointAddr          string        `env:"ARONOTES_ADDR"`
	DatabaseDSN           string        `env:"ARONOTES_DATABASE_DSN"`
	SecretKey             string        `env:"ARONOTES_SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"ARONOTES_TOKEN_VALIDITY"`
	CORSAllowedOrigins    string        `env:"ARONOTES_CORS_ORIGINS"`
	OpenFDABaseURL        string        `env:"ARONOTES_OPENFDA_BASE_URL"`
	PubMedBaseURL         string        `env:"ARONOTES_PUBMED_BASE_URL"`
	ProxyTimeout          time.Duration `env:"ARONOTES_PROXY_TIMEOUT"`
}

// parseEnv overlays values from environment variables onto the Config.
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	c := &EnvConfig{}

	if err := envdecode.Decode(c); err != nil {
		// Nothing set in the environment is fine.
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return
		}
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration
	}
	if c.CORSAllowedOrigins != "" {
		config.CORSAllowedOrigins = strings.Split(c.CORSAllowedOrigins, ",")
	}
	if c.OpenFDABaseURL != "" {
		config.OpenFDABaseURL = c.OpenFDABaseURL
	}
	if c.PubMedBaseURL != "" {
		config.PubMedBaseURL = c.PubMedBaseURL
	}
	if c.ProxyTimeout != 0 {
		config.ProxyTimeout = c.ProxyTimeout
	}
}
