// Package app wires configuration, clients, and services into runnable
// units for the two binaries.
package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/draftboard/external/sleeper"
	"github.com/riskibarqy/draftboard/internal/config"
	"github.com/riskibarqy/draftboard/internal/domain/board"
	"github.com/riskibarqy/draftboard/internal/infrastructure/snapshot"
	"github.com/riskibarqy/draftboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/draftboard/internal/platform/logging"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
	"github.com/riskibarqy/draftboard/internal/usecase"
)

// NewGenerator builds the ranked-list pipeline and its run options from
// configuration.
func NewGenerator(cfg config.Config, logger *logging.Logger) (*usecase.MergeService, usecase.MergeOptions, error) {
	if err := cfg.RequireSleeperUsername(); err != nil {
		return nil, usecase.MergeOptions{}, err
	}

	lists, err := config.LoadCuratedLists(cfg.CuratedListsPath)
	if err != nil {
		return nil, usecase.MergeOptions{}, err
	}

	client := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL: cfg.SleeperBaseURL,
		Timeout: cfg.SleeperTimeout,
		Logger:  logger,
	})
	snapshots := snapshot.NewStore(cfg.DataDir)

	service := usecase.NewMergeService(client, snapshots, logger)
	opts := usecase.MergeOptions{
		Username:          cfg.SleeperUsername,
		RankingsCSVPath:   cfg.RankingsCSVPath,
		SecondaryCSVPath:  cfg.SecondaryCSVPath,
		OrderedRosterPath: cfg.OrderedRosterPath,
		OutputPath:        cfg.OutputPath,
		MatchMinScore:     cfg.MatchMinScore,
		IncludeDefenses:   cfg.IncludeDefenses,
		LotteryTickets:    lists.LotteryTickets,
		Sleepers:          lists.Sleepers,
		Handcuffs:         lists.Handcuffs,
	}

	return service, opts, nil
}

// NewHTTPServer loads the generated board file into a fresh draft session
// and serves it.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	merged, err := tabular.ReadCSVFile(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("load board source %s (run the generator first): %w", cfg.OutputPath, err)
	}

	session, err := board.FromTable(merged)
	if err != nil {
		return nil, fmt.Errorf("build draft session: %w", err)
	}
	logger.Info("draft session loaded", "path", cfg.OutputPath, "players", len(session.Rows()))

	boardSvc, err := usecase.NewBoardService(session, board.SlashParser{}, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(boardSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
