package llmprovider

import (
	"context"

	"replypilot/pkg/gemini"
	"replypilot/pkg/groq"
	"replypilot/pkg/openai"
)

// GroqAdapter adapts pkg/groq to the llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateReply implements the Provider interface
func (a *GroqAdapter) GenerateReply(ctx context.Context, system, user string) (string, error) {
	text, err := a.client.GenerateReply(ctx, system, user)
	if err != nil {
		return "", &ProviderError{Provider: "groq", Err: err}
	}
	return text, nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateReply implements the Provider interface
func (a *GeminiAdapter) GenerateReply(ctx context.Context, system, user string) (string, error) {
	text, err := a.client.GenerateReply(ctx, system, user)
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Err: err}
	}
	return text, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateReply implements the Provider interface
func (a *OpenAIAdapter) GenerateReply(ctx context.Context, system, user string) (string, error) {
	text, err := a.client.GenerateReply(ctx, system, user)
	if err != nil {
		return "", &ProviderError{Provider: "openai", Err: err}
	}
	return text, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
