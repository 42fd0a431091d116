package httpserver

import (
	"github.com/gin-gonic/gin"

	"replypilot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "replypilot"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// statusCheck reports which providers have credentials configured.
// @Summary Service Status
// @Description Check which LLM providers are configured and usable
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Provider availability"
// @Router /status [get]
func (srv HTTPServer) statusCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":           "ok",
		"service":          ServiceName,
		"environment":      srv.environment,
		"groqConfigured":   srv.providerStatus["groq"],
		"geminiConfigured": srv.providerStatus["gemini"],
		"openaiConfigured": srv.providerStatus["openai"],
	})
}
