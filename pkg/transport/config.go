package transport

import "time"

const (
	DefaultBaseURL = "https://api.stripe.com/v1"
	DefaultTimeout = 80 * time.Second
)

type Config struct {
	APIKey     string        `koanf:"api_key" validate:"required"`
	BaseURL    string        `koanf:"base_url" validate:"required,url"`
	APIVersion string        `koanf:"api_version"`
	Timeout    time.Duration `koanf:"timeout" validate:"required"`
}

// DefaultConfig points at the live API with the given secret key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}
