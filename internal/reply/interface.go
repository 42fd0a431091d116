package reply

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate produces a normalized reply suggestion for a customer review
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}

// Generator is the provider-engine dependency of the use case.
// *llmprovider.Engine satisfies it.
type Generator interface {
	// Generate returns the generated text and the engine path taken
	Generate(ctx context.Context, language, system, user string) (string, string, error)
}
