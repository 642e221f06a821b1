package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	apiKeyConfigured bool
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(apiKeyConfigured bool) *HealthHandler {
	return &HealthHandler{
		apiKeyConfigured: apiKeyConfigured,
	}
}

// LivenessProbe checks if the application is running.
func (h *HealthHandler) LivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
		"time":   time.Now(),
	})
}

// ReadinessProbe checks if the application is ready to serve traffic. The
// service is stateless; readiness only depends on an upstream API key being
// configured.
func (h *HealthHandler) ReadinessProbe(c *gin.Context) {
	if !h.apiKeyConfigured {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"youtube": "api key not configured",
			"time":    time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"youtube": "configured",
		"time":    time.Now(),
	})
}
