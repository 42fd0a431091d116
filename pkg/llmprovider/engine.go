package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"replypilot/pkg/log"
)

// Route binds a resolved language to an ordered provider preference list.
// The first configured provider on the list is the primary; the rest are
// fallback hops, tried in order after a failure.
type Route struct {
	Language  string
	Providers []string
}

// DefaultRoutes is the language-to-provider decision table.
// Taglish goes Gemini-first (stronger Filipino output), English goes
// Groq-first (cheap and fast); OpenAI is the terminal fallback for both.
func DefaultRoutes() []Route {
	return []Route{
		{Language: "taglish", Providers: []string{"gemini", "groq", "openai"}},
		{Language: "english", Providers: []string{"groq", "gemini", "openai"}},
	}
}

// Engine selects a provider by resolved language and applies fallback hops
type Engine struct {
	providers map[string]Provider
	routes    []Route
	logger    log.Logger
}

// NewEngine creates a new Engine with the given providers and route table
func NewEngine(providers []Provider, routes []Route, logger log.Logger) *Engine {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &Engine{
		providers: byName,
		routes:    routes,
		logger:    logger,
	}
}

// Configured reports whether a provider with the given name is available
func (e *Engine) Configured(name string) bool {
	_, ok := e.providers[name]
	return ok
}

// Generate routes the request by language and tries the route's providers in
// order. It returns the generated text and the engine path taken, e.g. "groq"
// or "gemini→groq" when a fallback hop fired.
func (e *Engine) Generate(ctx context.Context, language, system, user string) (string, string, error) {
	candidates := e.routeFor(language)
	if len(candidates) == 0 {
		return "", "", fmt.Errorf("%w for language %q", ErrNoProvidersConfigured, language)
	}

	var tried []string
	var lastErr error

	for _, provider := range candidates {
		select {
		case <-ctx.Done():
			return "", "", fmt.Errorf("generation cancelled after trying %d provider(s): %w",
				len(tried), ctx.Err())
		default:
		}

		text, err := provider.GenerateReply(ctx, system, user)
		if err == nil {
			path := strings.Join(append(tried, provider.Name()), "→")
			e.logSuccess(ctx, provider, path)
			return text, path, nil
		}

		e.logFailure(ctx, provider, err)
		tried = append(tried, provider.Name())
		lastErr = err
	}

	return "", "", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// routeFor returns the configured providers for a language, in route order.
// Unknown languages fall through to the first route.
func (e *Engine) routeFor(language string) []Provider {
	route := e.routes[0]
	for _, r := range e.routes {
		if r.Language == language {
			route = r
			break
		}
	}

	var candidates []Provider
	for _, name := range route.Providers {
		if p, ok := e.providers[name]; ok {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

func (e *Engine) logSuccess(ctx context.Context, provider Provider, path string) {
	e.logger.Infof(ctx, "reply generated: provider=%s model=%s path=%s",
		provider.Name(), provider.Model(), path)
}

func (e *Engine) logFailure(ctx context.Context, provider Provider, err error) {
	e.logger.Warnf(ctx, "provider call failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
