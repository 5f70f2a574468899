package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check godoc
// @Summary Health check
// @Description Check if service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// First is a plain-text connectivity probe used by the frontend.
func (h *HealthHandler) First(c *gin.Context) {
	c.String(http.StatusOK, "You've successfully connected!")
}

// Second is the companion probe to First.
func (h *HealthHandler) Second(c *gin.Context) {
	c.String(http.StatusOK, "This is my second get!")
}
