package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-1.5-flash"

	// DefaultAPIURL is the default Generative Language API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultTemperature is the default sampling temperature
	DefaultTemperature = 0.7

	// DefaultMaxTokens caps the generated reply length
	DefaultMaxTokens = 256
)
