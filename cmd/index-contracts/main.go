// Command index-contracts embeds the vendor contracts into the qdrant
// collection the knowledge retriever searches. Run once per onboarding
// batch; upserts are idempotent per contract document.
package main

import (
	"context"
	"time"

	"vdms/internal/config"
	"vdms/internal/knowledge"
	"vdms/internal/llm"
	"vdms/internal/store"
)

func main() {
	cfg := config.Load()
	logger := cfg.SetupLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

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
	}

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create LLM client")
	}

	indexer, err := knowledge.NewIndexer(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantAPIKey,
		cfg.QdrantCollection, llmClient, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to qdrant")
	}

	if err := indexer.EnsureCollection(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ensure collection")
	}

	vendors, err := st.Vendors(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load vendors")
	}

	indexed := 0
	for i := range vendors {
		vendor := &vendors[i]

		contract, err := st.ContractByVendorID(ctx, vendor.ID)
		if err != nil {
			logger.Warn().Str("vendor_id", vendor.ID).Msg("Vendor has no contract, skipping")
			continue
		}

		if err := indexer.IndexContract(ctx, vendor, contract); err != nil {
			logger.Error().Err(err).Str("vendor_id", vendor.ID).Msg("Failed to index contract")
			continue
		}
		indexed++
	}

	logger.Info().Int("indexed", indexed).Int("vendors", len(vendors)).Msg("Contract indexing complete")
}
