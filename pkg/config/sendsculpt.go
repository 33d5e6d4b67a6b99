package config

import (
	"time"

	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
)

// SendSculptConfig configures the API client.
type SendSculptConfig struct {
	APIKey      string
	BaseURL     string
	Environment string
	Timeout     time.Duration
}

func loadSendSculptConfig() SendSculptConfig {
	return SendSculptConfig{
		APIKey:      getEnv("SENDSCULPT_API_KEY", ""),
		BaseURL:     getEnv("SENDSCULPT_BASE_URL", sendsculpt.DefaultBaseURL),
		Environment: getEnv("SENDSCULPT_ENVIRONMENT", sendsculpt.DefaultEnvironment),
		Timeout:     getEnvDuration("SENDSCULPT_TIMEOUT", sendsculpt.DefaultTimeout),
	}
}

// Validate checks the values needed to send email.
func (c SendSculptConfig) Validate() error {
	if c.APIKey == "" {
		return configErrors.NewWithMessage(ErrMissingValue, "SENDSCULPT_API_KEY is required").
			WithDetail("key", "SENDSCULPT_API_KEY")
	}
	if c.Timeout <= 0 {
		return configErrors.NewWithMessage(ErrInvalidValue, "SENDSCULPT_TIMEOUT must be positive").
			WithDetail("key", "SENDSCULPT_TIMEOUT")
	}
	return nil
}

// ClientOptions translates the configuration into client options.
func (c SendSculptConfig) ClientOptions() []sendsculpt.Option {
	return []sendsculpt.Option{
		sendsculpt.WithBaseURL(c.BaseURL),
		sendsculpt.WithEnvironment(c.Environment),
		sendsculpt.WithTimeout(c.Timeout),
	}
}
