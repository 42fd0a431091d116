package groq

import "context"

// IGroq defines the interface for the Groq chat completions client.
// Implementations are safe for concurrent use.
type IGroq interface {
	// GenerateReply sends a single-turn generation request and returns the text
	GenerateReply(ctx context.Context, system, user string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Groq client with the given configuration
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGroqImpl(cfg), nil
}
