package gemini

import "context"

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateReply sends a single-turn generation request and returns the text
	GenerateReply(ctx context.Context, system, user string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
