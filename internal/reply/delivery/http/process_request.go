package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"replypilot/internal/language"
	"replypilot/internal/reply"
	"replypilot/internal/usage"
)

// generateReq is the inbound JSON body for reply generation.
type generateReq struct {
	ReviewText  string `json:"reviewText"`
	ProductName string `json:"productName"`
	Platform    string `json:"platform"`
	Rating      int    `json:"rating"`
	Tone        string `json:"tone"`
	Language    string `json:"language"`
}

// processGenerateReq binds and validates the request body. Review text is
// the only hard requirement; everything else defaults downstream.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return generateReq{}, errInvalidBody
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		return generateReq{}, reply.ErrReviewTextRequired
	}
	return req, nil
}

func (req generateReq) toInput(c *gin.Context) reply.GenerateInput {
	return reply.GenerateInput{
		ReviewText:  req.ReviewText,
		ProductName: req.ProductName,
		Platform:    reply.Platform(req.Platform),
		Rating:      req.Rating,
		Tone:        reply.Tone(req.Tone),
		Language:    language.Language(req.Language),
		Caller:      usage.CallerID(c.Request),
	}
}
