package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"moodlens/internal/config"
	"moodlens/internal/handler"
	"moodlens/internal/logger"
	"moodlens/internal/service"
	"moodlens/internal/store"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	configFile string
	memoryMode bool
)

var rootCmd = &cobra.Command{
	Use:     "moodlens",
	Short:   "Journal entries and mood check-ins with emotion analysis.",
	Version: fmt.Sprintf("v%s", version),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Discard()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of moodlens",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Serves the analysis, record and insight endpoints on the configured address.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		logger.Init(a.cfg.Log)

		r := handler.NewRouter(a.cfg.Server,
			handler.NewAnalyzeHandler(a.analysis),
			handler.NewRecordHandler(a.records),
			handler.NewInsightsHandler(a.insights),
		)
		logger.Info("server starting", "addr", a.cfg.Addr(), "memory", memoryMode)
		return r.Run(a.cfg.Addr())
	},
}

// app bundles what every command needs: config, the record store and the
// services built on them.
type app struct {
	cfg      *config.Config
	records  store.RecordStore
	analysis *service.AnalysisService
	insights *service.InsightsService
}

func openApp(ctx context.Context) (*app, error) {
	cfg := config.Load(configFile)

	var records store.RecordStore
	if memoryMode {
		records = store.NewMemoryStore()
	} else {
		db, err := cfg.OpenGormDB()
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		gs := store.NewGormStore(db)
		if err := gs.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		records = gs
	}

	hf := service.NewHuggingFace(cfg.HuggingFace)
	return &app{
		cfg:      cfg,
		records:  records,
		analysis: service.NewAnalysisService(hf, cfg.HuggingFace.SummaryMinWords),
		insights: service.NewInsightsService(records),
	}, nil
}

// explain turns pipeline errors into messages a terminal user can act on.
func explain(err error) error {
	if errors.Is(err, service.ErrNotConfigured) {
		return errors.New("hugging face api key not configured: set HUGGINGFACE_API_KEY or huggingface.api_key in the config file")
	}
	return err
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func initCmd() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (e.g. etc/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&memoryMode, "memory", false, "keep records in memory only, nothing is written to disk")

	analyzeCmd.Flags().Bool("save", false, "store the analyzed text as a journal entry")

	for _, id := range checkInQuestions {
		checkinCmd.Flags().Int(string(id), 0, fmt.Sprintf("answer for %s (1-5)", id))
	}
	checkinCmd.Flags().Bool("save", false, "store the check-in")

	entriesCmd.AddCommand(listEntriesCmd, showEntryCmd, deleteEntryCmd)
	checkinsCmd.AddCommand(listCheckInsCmd, showCheckInCmd, deleteCheckInCmd)

	rootCmd.AddCommand(versionCmd, serveCmd, analyzeCmd, checkinCmd, questionsCmd,
		entriesCmd, checkinsCmd, statsCmd, trendCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
