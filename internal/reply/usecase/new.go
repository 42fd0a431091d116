package usecase

import (
	"replypilot/internal/reply"
	"replypilot/internal/usage"
	"replypilot/pkg/log"
)

// implUseCase is the private implementation of reply.UseCase.
type implUseCase struct {
	engine  reply.Generator
	tracker usage.Tracker
	l       log.Logger
}

// New creates a new reply UseCase implementation.
func New(l log.Logger, engine reply.Generator, tracker usage.Tracker) *implUseCase {
	return &implUseCase{
		engine:  engine,
		tracker: tracker,
		l:       l,
	}
}
