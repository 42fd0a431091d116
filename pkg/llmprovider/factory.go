package llmprovider

import (
	"fmt"
	"strings"

	"replypilot/config"
	"replypilot/pkg/gemini"
	"replypilot/pkg/groq"
	"replypilot/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers that are disabled or have no API key are skipped; they show up
// as not-configured in /status instead of failing the boot. Zero usable
// providers is an error.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var providers []Provider
	var initErrors []string

	for _, p := range cfg.Providers {
		if !p.Enabled || p.APIKey == "" {
			continue
		}
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s: %v", p.Name, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		if len(initErrors) > 0 {
			return nil, fmt.Errorf("no providers successfully initialized: %s",
				strings.Join(initErrors, "; "))
		}
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case "groq":
		client, err := groq.New(groq.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai":
		client, err := openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
