package knowledge

import (
	"fmt"

	"vdms/internal/config"
	"vdms/internal/llm"

	"github.com/rs/zerolog"
)

// NewSearcher builds the search backend named by KNOWLEDGE_BACKEND.
// "off" yields a nil searcher, which the Retriever treats as nothing
// found on every lookup.
func NewSearcher(cfg *config.Config, embedder llm.Embedder, logger zerolog.Logger) (Searcher, error) {
	switch cfg.KnowledgeBackend {
	case "http":
		if cfg.KnowledgeAPIKey == "" {
			logger.Warn().Msg("KNOWLEDGE_API_KEY not set, knowledge retrieval will be skipped")
		}
		return NewHTTPSearcher(cfg.KnowledgeAPIURL, cfg.KnowledgeAPIKey), nil
	case "qdrant":
		return NewVectorSearcher(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantAPIKey, cfg.QdrantCollection, embedder)
	case "off":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown knowledge backend %q", cfg.KnowledgeBackend)
	}
}
