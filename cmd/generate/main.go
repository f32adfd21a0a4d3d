package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/draftboard/internal/app"
	"github.com/riskibarqy/draftboard/internal/config"
	"github.com/riskibarqy/draftboard/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	service, opts, err := app.NewGenerator(cfg, logger)
	if err != nil {
		logger.Error("build generator", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := service.Run(ctx, opts)
	if err != nil {
		logger.ErrorContext(ctx, "generator run failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "ranked list generated",
		"output", report.OutputPath,
		"account", report.AccountDisplayName,
		"roster_rows", report.RosterRows,
		"matched", report.MatchedRows,
		"total", report.TotalRows,
		"unmatched", len(report.Unmatched),
		"from_snapshot", report.FromSnapshot,
	)
}
