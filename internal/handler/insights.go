package handler

import (
	"net/http"

	"moodlens/internal/service"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	svc *service.InsightsService
}

func NewInsightsHandler(svc *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

// GET /api/stats
func (h *InsightsHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/trend
func (h *InsightsHandler) Trend(c *gin.Context) {
	points, err := h.svc.Trend(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}
