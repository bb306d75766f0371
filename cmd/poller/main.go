package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vdms/internal/agent"
	"vdms/internal/cases"
	"vdms/internal/config"
	"vdms/internal/knowledge"
	"vdms/internal/llm"
	"vdms/internal/mailbox"
	"vdms/internal/notify"
	"vdms/internal/poller"
	"vdms/internal/store"
)

func main() {
	cfg := config.Load()
	logger := cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st store.Store
	if cfg.DatabaseURL != "" {
		sqlStore, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to reference database")
		}
		defer sqlStore.Close()
		st = sqlStore
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

	mb, err := mailbox.NewGmailMailbox(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Gmail mailbox")
	}

	var notifier poller.Notifier
	if cfg.SendGridAPIKey != "" {
		notifier = notify.NewEmailNotifier(cfg.SendGridAPIKey, cfg.FinanceEmail)
	} else {
		logger.Info().Msg("SENDGRID_API_KEY not set, case notifications disabled")
	}

	pipeline := agent.New(llmClient, retriever, logger)
	registry := poller.NewRegistry(time.Duration(cfg.ProcessedTTLHours) * time.Hour)

	p := poller.New(mb, pipeline, st, repo, registry, notifier,
		time.Duration(cfg.PollIntervalSeconds)*time.Second, cfg.MaxMessagesPerPoll, logger)

	p.Run(ctx)
}
