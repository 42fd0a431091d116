package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateReply sends a single-turn generation request and returns the text
	GenerateReply(ctx context.Context, system, user string) (string, error)

	// Name returns the provider name (e.g., "groq", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}
