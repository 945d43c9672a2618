package oracle

import (
	"fmt"
	"os"
	"time"
)

// Config holds content oracle configuration.
type Config struct {
	// Provider selects which oracle backend to use.
	// Values: "anthropic", "openai", "gemini", "mock"
	Provider string

	// Model is the friendly or literal model name for the provider.
	Model string

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL optionally overrides the OpenAI endpoint (for compatible APIs).
	BaseURL string

	// Timeout bounds a single request including retries. Default 30s.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "mock",
		Timeout:  30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// FromEnv layers environment variables over defaults. The standard
// provider key variables are probed when TUTOR_ORACLE_API_KEY is unset.
func FromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("TUTOR_ORACLE_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("TUTOR_ORACLE_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("TUTOR_ORACLE_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if k := os.Getenv("TUTOR_ORACLE_API_KEY"); k != "" {
		cfg.APIKey = k
		return cfg
	}

	switch cfg.Provider {
	case "anthropic":
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	case "gemini":
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s oracle provider", c.Provider)
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown oracle provider: %q", c.Provider)
	}
	return nil
}
