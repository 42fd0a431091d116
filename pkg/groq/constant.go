package groq

import "time"

const (
	// DefaultModel is the default Groq model
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultBaseURL is the default Groq OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultTemperature is the default sampling temperature
	DefaultTemperature = 0.7

	// DefaultMaxTokens caps the generated reply length
	DefaultMaxTokens = 256
)
