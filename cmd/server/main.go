package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"moodlens/internal/config"
	"moodlens/internal/handler"
	"moodlens/internal/logger"
	"moodlens/internal/service"
	"moodlens/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	records := store.NewGormStore(db)
	if err := records.Migrate(context.Background()); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	hf := service.NewHuggingFace(cfg.HuggingFace)
	if !hf.Configured() {
		slog.Warn("hugging face api key not configured, analysis endpoints will fail")
	}
	analysisSvc := service.NewAnalysisService(hf, cfg.HuggingFace.SummaryMinWords)
	insightsSvc := service.NewInsightsService(records)

	r := handler.NewRouter(cfg.Server,
		handler.NewAnalyzeHandler(analysisSvc),
		handler.NewRecordHandler(records),
		handler.NewInsightsHandler(insightsSvc),
	)

	slog.Info("server starting", "addr", cfg.Addr(), "driver", cfg.Database.Driver)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
