package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sendsculpt/sendsculpt-go/pkg/errx"
)

var configErrors = errx.NewRegistry("CONFIG")

var (
	ErrMissingValue = configErrors.Register("MISSING_VALUE", errx.TypeValidation, 400, "Missing configuration value")
	ErrInvalidValue = configErrors.Register("INVALID_VALUE", errx.TypeValidation, 400, "Invalid configuration value")
)

// Config is the full configuration of the command line tools.
type Config struct {
	SendSculpt SendSculptConfig
	Storage    StorageConfig
	StubAPI    StubAPIConfig
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		SendSculpt: loadSendSculptConfig(),
		Storage:    loadStorageConfig(),
		StubAPI:    loadStubAPIConfig(),
	}
	if err := cfg.Storage.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("30s") or plain seconds ("30").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
