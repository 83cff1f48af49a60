package config

import "time"

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// Extract turns the answer transcript into weighted traits (needs to be fast)
	Extract string `koanf:"extract" json:"extract"`

	// Narrate writes the final report from ranked candidates (quality over speed)
	Narrate string `koanf:"narrate" json:"narrate"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `koanf:"api_key" json:"-"` // Never serialize
	BaseURL   string       `koanf:"base_url" json:"baseUrl"`
	Models    GeminiModels `koanf:"models" json:"models"`
	TimeoutMS int          `koanf:"timeout_ms" json:"timeoutMs"`

	// Outbound request shaping
	RequestsPerSecond float64       `koanf:"requests_per_second" json:"requestsPerSecond"`
	Burst             int           `koanf:"burst" json:"burst"`
	BreakerFailures   uint32        `koanf:"breaker_failures" json:"breakerFailures"`
	BreakerTimeout    time.Duration `koanf:"breaker_timeout" json:"breakerTimeout"`

	// Extraction retries on quota errors only
	ExtractRetries int           `koanf:"extract_retries" json:"extractRetries"`
	RetryBackoff   time.Duration `koanf:"retry_backoff" json:"retryBackoff"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() AIConfig {
	return AIConfig{
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Extract: "gemini-2.0-flash",
			Narrate: "gemini-2.0-flash",
		},
		TimeoutMS:         30000,
		RequestsPerSecond: 2,
		Burst:             2,
		BreakerFailures:   5,
		BreakerTimeout:    30 * time.Second,
		ExtractRetries:    2,
		RetryBackoff:      4 * time.Second,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

// Timeout is the per-request HTTP timeout.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
