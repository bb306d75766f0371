package knowledge

import (
	"context"
	"fmt"

	"vdms/internal/llm"
	"vdms/internal/models"
	"vdms/internal/store"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"github.com/rs/zerolog"
)

// Indexer writes contract documents into the qdrant collection the
// VectorSearcher reads from. Run during vendor onboarding.
type Indexer struct {
	client     *qdrant.Client
	embedder   llm.Embedder
	collection string
	logger     zerolog.Logger
}

// NewIndexer creates an indexer for the given qdrant collection
func NewIndexer(host string, port int, apiKey, collection string, embedder llm.Embedder, logger zerolog.Logger) (*Indexer, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to qdrant: %w", err)
	}

	return &Indexer{
		client:     client,
		embedder:   embedder,
		collection: collection,
		logger:     logger,
	}, nil
}

// EnsureCollection creates the contract collection when it does not exist
func (ix *Indexer) EnsureCollection(ctx context.Context) error {
	exists, err := ix.client.CollectionExists(ctx, ix.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", ix.collection, err)
	}
	if exists {
		return nil
	}

	err = ix.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: ix.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     llm.EmbeddingDimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", ix.collection, err)
	}

	ix.logger.Info().Str("collection", ix.collection).Msg("Created qdrant collection")
	return nil
}

// contractPointID derives a stable point id from the contract number so
// re-indexing a contract replaces its point instead of inserting a twin.
func contractPointID(contractNumber string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(contractNumber)).String()
}

// IndexContract embeds one contract document and upserts it with its
// lookup payload. The document text is the same rendering the analysis
// prompt uses, so retrieved snippets parse with the same label heuristics.
func (ix *Indexer) IndexContract(ctx context.Context, vendor *models.Vendor, contract *models.Contract) error {
	title := fmt.Sprintf("Contract %s - %s", contract.ContractNumber, vendor.Name)
	text := fmt.Sprintf("Vendor Name: %s\nVendor Email: %s\n%s",
		vendor.Name, vendor.Email, store.FormatContractContext(contract))

	vectors, err := ix.embedder.Embed(ctx, []string{text})
	if err != nil {
		return fmt.Errorf("failed to embed contract %s: %w", contract.ContractNumber, err)
	}

	_, err = ix.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: ix.collection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(contractPointID(contract.ContractNumber)),
				Vectors: qdrant.NewVectors(vectors[0]...),
				Payload: qdrant.NewValueMap(map[string]any{
					"title":           title,
					"text":            text,
					"contract_number": contract.ContractNumber,
					"vendor_id":       vendor.ID,
					"vendor_name":     vendor.Name,
				}),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert contract %s: %w", contract.ContractNumber, err)
	}

	ix.logger.Info().
		Str("contract_number", contract.ContractNumber).
		Str("vendor_id", vendor.ID).
		Msg("Contract indexed")

	return nil
}
