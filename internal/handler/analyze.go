package handler

import (
	"errors"
	"net/http"

	"moodlens/internal/logger"
	"moodlens/internal/model"
	"moodlens/internal/service"

	"github.com/gin-gonic/gin"
)

const notConfiguredMessage = "Hugging Face API key not configured"

type AnalyzeHandler struct {
	svc *service.AnalysisService
}

func NewAnalyzeHandler(svc *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// POST /api/analyze  body: {"text":"..."}
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.svc.AnalyzeText(c.Request.Context(), req.Text)
	if err != nil {
		logger.Warn("analyze.failed", "err", err)
		analysisError(c, err, "Failed to analyze text")
		return
	}
	logger.Info("analyze.ok", "dominant", res.DominantEmotion, "emotions", len(res.Emotions))
	c.JSON(http.StatusOK, res)
}

// POST /api/check-in  body: {"text":"...","moodScore":60,"answers":{...}}
func (h *AnalyzeHandler) CheckIn(c *gin.Context) {
	var req model.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.svc.AnalyzeCheckIn(c.Request.Context(), req)
	if err != nil {
		logger.Warn("checkin.failed", "err", err)
		analysisError(c, err, "Failed to analyze check-in")
		return
	}
	logger.Info("checkin.ok", "dominant", res.DominantEmotion, "score", res.MoodScore)
	c.JSON(http.StatusOK, res)
}

func analysisError(c *gin.Context, err error, failed string) {
	switch {
	case errors.Is(err, service.ErrTextRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
	case errors.Is(err, service.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": notConfiguredMessage})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": failed, "detail": err.Error()})
	}
}
