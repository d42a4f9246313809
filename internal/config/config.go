// Package config resolves client settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAPIURL  = "JIKAN_API_URL"
	EnvVersion = "JIKAN_API_VERSION"
	EnvTimeout = "JIKAN_HTTP_TIMEOUT"
	EnvDebug   = "JIKAN_DEBUG"
)

// Config holds the resolved client settings.
type Config struct {
	APIRoot string
	Version int
	Timeout time.Duration
	Debug   bool
}

// LoadEnvFile loads a .env file from the working directory when present.
// A missing file is not an error; a malformed one is.
func LoadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// Load resolves configuration from the environment. Unset variables fall
// back to defaults; set-but-invalid values are errors rather than being
// silently ignored.
func Load() (Config, error) {
	cfg := Config{
		APIRoot: strings.TrimSpace(os.Getenv(EnvAPIURL)),
		Debug:   ParseBool(os.Getenv(EnvDebug)),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvVersion)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvVersion, raw)
		}
		cfg.Version = v
	}

	if raw := strings.TrimSpace(os.Getenv(EnvTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive duration, got %q", EnvTimeout, raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// ParseBool reads the usual truthy spellings; anything else is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
