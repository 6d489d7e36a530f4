package handler

import (
	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates the health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports the service is up.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
