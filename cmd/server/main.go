package main

import (
	"vdms/internal/agent"
	"vdms/internal/cases"
	"vdms/internal/config"
	"vdms/internal/knowledge"
	"vdms/internal/llm"
	"vdms/internal/server"
	"vdms/internal/store"

	"github.com/jmoiron/sqlx"
)

// @title Vendor Dispute Management API
// @version 1.0
// @description Analyzes vendor dispute emails and drafts resolution cases for approval.
// @BasePath /
func main() {
	cfg := config.Load()
	logger := cfg.SetupLogger()

	// Reference data: MySQL when configured, built-in seed data otherwise.
	var (
		st store.Store
		db *sqlx.DB
	)
	if cfg.DatabaseURL != "" {
		sqlStore, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to reference database")
		}
		defer sqlStore.Close()
		st = sqlStore
		db = sqlStore.DB()
		logger.Info().Msg("Reference database connection established")
	} else {
		st = store.NewSeedStore()
		logger.Info().Msg("No DATABASE_URL configured, serving built-in seed data")
	}

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create LLM client")
	}

	searcher, err := knowledge.NewSearcher(cfg, llmClient, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create knowledge backend")
	}
	retriever := knowledge.NewRetriever(searcher, cfg.KnowledgeMaxResults, logger)

	repo, err := cases.NewRepository(cfg.CasesDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open case directory")
	}

	pipeline := agent.New(llmClient, retriever, logger)

	srv := server.New(cfg, db, st, pipeline, repo, retriever, logger)
	srv.Initialize()

	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
