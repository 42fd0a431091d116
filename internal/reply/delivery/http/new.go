package http

import (
	"github.com/gin-gonic/gin"

	"replypilot/internal/reply"
	"replypilot/internal/usage"
	"replypilot/pkg/log"
)

// Handler is the public interface for the reply HTTP delivery layer.
type Handler interface {
	GenerateReply(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      reply.UseCase
	tracker usage.Tracker
}

// New creates a new HTTP handler for the reply domain.
func New(l log.Logger, uc reply.UseCase, tracker usage.Tracker) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		tracker: tracker,
	}
}
