package http

import (
	"errors"
	"net/http"

	"replypilot/internal/reply"
	"replypilot/pkg/llmprovider"
)

var errInvalidBody = errors.New("invalid request body")

// mapError translates domain/use-case errors into an HTTP status and a
// caller-facing message, per the error taxonomy: validation 400,
// configuration 500 (distinct message), empty reply 502, upstream 500.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, reply.ErrReviewTextRequired):
		return http.StatusBadRequest, "reviewText is required"
	case errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, "invalid request body"
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return http.StatusInternalServerError, "no provider configured"
	case errors.Is(err, reply.ErrEmptyReply):
		return http.StatusBadGateway, "provider returned an empty reply"
	case errors.Is(err, llmprovider.ErrAllProvidersFailed):
		return http.StatusInternalServerError, "reply generation failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
