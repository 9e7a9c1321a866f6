package handler

import (
	"net/http"

	"moodlens/internal/config"
	"moodlens/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts every API route on a gin engine with recovery, request
// logging and CORS.
func NewRouter(cfg config.ServerConfig, analyze *AnalyzeHandler, records *RecordHandler, insights *InsightsHandler) *gin.Engine {
	origins := cfg.AllowOrigin
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/analyze", analyze.Analyze)
	api.POST("/check-in", analyze.CheckIn)
	api.GET("/questions", records.Questions)

	api.GET("/entries", records.ListEntries)
	api.POST("/entries", records.CreateEntry)
	api.GET("/entries/:id", records.GetEntry)
	api.DELETE("/entries/:id", records.DeleteEntry)

	api.GET("/check-ins", records.ListCheckIns)
	api.POST("/check-ins", records.CreateCheckIn)
	api.GET("/check-ins/:id", records.GetCheckIn)
	api.DELETE("/check-ins/:id", records.DeleteCheckIn)

	api.GET("/stats", insights.Stats)
	api.GET("/trend", insights.Trend)
	return r
}
