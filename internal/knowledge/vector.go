package knowledge

import (
	"context"
	"fmt"

	"vdms/internal/llm"

	"github.com/qdrant/go-client/qdrant"
)

// VectorSearcher serves knowledge searches from a qdrant collection of
// indexed contract documents. The query is embedded and matched against
// the stored vectors; the best snippet doubles as the answer text.
type VectorSearcher struct {
	client     *qdrant.Client
	embedder   llm.Embedder
	collection string
}

// NewVectorSearcher connects to qdrant and wraps the given collection
func NewVectorSearcher(host string, port int, apiKey, collection string, embedder llm.Embedder) (*VectorSearcher, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to qdrant: %w", err)
	}

	return &VectorSearcher{
		client:     client,
		embedder:   embedder,
		collection: collection,
	}, nil
}

// Search embeds the query and returns the closest contract snippets
func (s *VectorSearcher) Search(ctx context.Context, query string, maxResults int) (*SearchResult, error) {
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vectors[0]...),
		Limit:          qdrant.PtrOf(uint64(maxResults)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant query failed: %w", err)
	}

	if len(points) == 0 {
		return &SearchResult{TotalResults: 0}, nil
	}

	result := &SearchResult{TotalResults: len(points)}
	for _, point := range points {
		source := Source{
			Title:   point.Payload["title"].GetStringValue(),
			Content: point.Payload["text"].GetStringValue(),
			Score:   float64(point.Score),
		}
		result.Sources = append(result.Sources, source)
	}

	// The top-scoring snippet carries the labeled contract text, so it
	// stands in for the answer the remote API would synthesize.
	result.Answer = result.Sources[0].Content

	return result, nil
}
