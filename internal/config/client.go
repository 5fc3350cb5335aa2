package config

import (
	"os"
	"strings"
	"time"
)

// Base URLs for the two deployment modes. The mobile CLI picks one by mode;
// tests and the flag override inject arbitrary endpoints.
const (
	DevelopmentBaseURL = "http://10.0.2.2:8000"
	ProductionBaseURL  = "https://coop.sarisari.ph"
)

// RequestTimeout bounds every API call. Tuned for cellular networks.
const RequestTimeout = 20 * time.Second

// Mode selects which base URL a client build talks to.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// ClientConfig is the explicit configuration for the mobile API client.
// It is injected into constructors; nothing reads it from a global.
type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	SessionFile string
}

// ForMode returns the client configuration for a deployment mode,
// honoring COOP_SERVER and COOP_TIMEOUT environment overrides.
func ForMode(mode Mode) ClientConfig {
	base := DevelopmentBaseURL
	if mode == ModeProduction {
		base = ProductionBaseURL
	}

	cfg := ClientConfig{
		BaseURL: strings.TrimRight(getEnv("COOP_SERVER", base), "/"),
		Timeout: getEnvAsDuration("COOP_TIMEOUT", RequestTimeout),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
