package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the reply routes on the given group.
// /replypilot is a legacy alias kept for older integrations.
func MapRoutes(api *gin.RouterGroup, h Handler) {
	api.POST("/generate-reply", h.GenerateReply)
	api.POST("/replypilot", h.GenerateReply)
}
