package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replypilot/internal/usage"
	"replypilot/pkg/response"
)

// GenerateReply godoc
// @Summary     Generate a review reply
// @Description Generates a suggested seller reply for a marketplace customer review.
// @Tags        Reply
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Review data"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.ErrResp "Missing or invalid review text"
// @Failure     429 {object} response.ErrResp "Rate limited"
// @Failure     502 {object} response.ErrResp "Provider returned no text"
// @Failure     500 {object} response.ErrResp "Configuration or upstream failure"
// @Router      /api/generate-reply [POST]
func (h *handler) GenerateReply(c *gin.Context) {
	ctx := c.Request.Context()

	caller := usage.CallerID(c.Request)
	if !h.tracker.Allow(caller) {
		response.Error(c, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	req, err := h.processGenerateReq(c)
	if err != nil {
		status, msg := mapError(err)
		response.Error(c, status, msg)
		return
	}

	// Full upstream errors go to the log only; bodies can carry
	// request URLs and credentials.
	output, err := h.uc.Generate(ctx, req.toInput(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		status, msg := mapError(err)
		response.Error(c, status, msg)
		return
	}

	response.OK(c, newGenerateResp(output))
}
