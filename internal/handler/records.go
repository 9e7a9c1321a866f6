package handler

import (
	"errors"
	"net/http"

	"moodlens/internal/logger"
	"moodlens/internal/model"
	"moodlens/internal/mood"
	"moodlens/internal/service"
	"moodlens/internal/store"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	store store.RecordStore
}

func NewRecordHandler(s store.RecordStore) *RecordHandler {
	return &RecordHandler{store: s}
}

// GET /api/questions
func (h *RecordHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, mood.Questions())
}

// POST /api/entries
func (h *RecordHandler) CreateEntry(c *gin.Context) {
	var req model.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	emotions := service.SortEmotions(req.Emotions)
	if req.DominantEmotion == "" {
		req.DominantEmotion = service.DominantEmotion(emotions)
	}
	e := model.NewJournalEntry(req.Text, emotions, req.DominantEmotion, req.Summary)
	if err := h.store.AppendEntry(c.Request.Context(), e); err != nil {
		logger.Error("store.append failed", "kind", "entry", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("store.append", "kind", "entry", "id", e.ID)
	c.JSON(http.StatusCreated, e)
}

// GET /api/entries
func (h *RecordHandler) ListEntries(c *gin.Context) {
	entries, err := h.store.ListEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// GET /api/entries/:id
func (h *RecordHandler) GetEntry(c *gin.Context) {
	e, err := h.store.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		lookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /api/entries/:id
func (h *RecordHandler) DeleteEntry(c *gin.Context) {
	if err := h.store.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/check-ins
func (h *RecordHandler) CreateCheckIn(c *gin.Context) {
	var req model.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	emotions := service.SortEmotions(req.Emotions)
	if req.DominantEmotion == "" {
		req.DominantEmotion = service.DominantEmotion(emotions)
	}
	ci := model.NewCheckInEntry(mood.ClampScore(req.MoodScore), req.Answers, emotions, req.DominantEmotion, req.Advice)
	if err := h.store.AppendCheckIn(c.Request.Context(), ci); err != nil {
		logger.Error("store.append failed", "kind", "check-in", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("store.append", "kind", "check-in", "id", ci.ID)
	c.JSON(http.StatusCreated, ci)
}

// GET /api/check-ins
func (h *RecordHandler) ListCheckIns(c *gin.Context) {
	checkIns, err := h.store.ListCheckIns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if checkIns == nil {
		checkIns = []model.CheckInEntry{}
	}
	c.JSON(http.StatusOK, checkIns)
}

// GET /api/check-ins/:id
func (h *RecordHandler) GetCheckIn(c *gin.Context) {
	ci, err := h.store.GetCheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		lookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, ci)
}

// DELETE /api/check-ins/:id
func (h *RecordHandler) DeleteCheckIn(c *gin.Context) {
	if err := h.store.DeleteCheckIn(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func lookupError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
