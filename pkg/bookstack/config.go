package bookstack

import "time"

// Config holds BookStack API connection settings.
type Config struct {
	// URL is the base URL of the BookStack instance (without /api).
	URL string `yaml:"url"`

	// TokenID is the API token ID created in the BookStack user settings.
	TokenID string `yaml:"token_id"`

	// TokenSecret is the API token secret paired with TokenID.
	TokenSecret string `yaml:"token_secret"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// GetTimeout returns the configured timeout or a sensible default.
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}

	return c.Timeout
}
