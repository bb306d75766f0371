// Package llm wraps the OpenAI API behind the two narrow capabilities the
// rest of the system depends on: text generation and text embedding.
// Deterministic fakes of these interfaces drive the pipeline tests.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vdms/internal/config"

	"github.com/sashabaranov/go-openai"
)

// ErrGeneration marks a transport or protocol failure of the
// text-generation capability. Callers match it with errors.Is.
var ErrGeneration = errors.New("text generation failed")

// Generation parameters shared by the extraction and analysis stages
const (
	maxTokens   = 2048
	temperature = 0.7
)

// Generator is the opaque text-generation capability: given a prompt and
// a system instruction, return generated text.
type Generator interface {
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
}

// Embedder turns texts into vectors for the knowledge base backend
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Client implements Generator and Embedder on top of the OpenAI API
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates an OpenAI-backed client from configuration
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	return &Client{
		api:     openai.NewClient(cfg.OpenAIKey),
		model:   cfg.OpenAIModel,
		timeout: time.Duration(cfg.OpenAITimeout) * time.Second,
	}, nil
}

// Generate runs a single chat completion with the given system
// instruction. One attempt, no retry; callers decide what a failure means.
func (c *Client) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from model %s", ErrGeneration, c.model)
	}

	return resp.Choices[0].Message.Content, nil
}

// Embed generates embeddings for the given texts
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		embeddings[i] = data.Embedding
	}

	return embeddings, nil
}

// EmbeddingDimension is the vector size of the embedding model in use
// (text-embedding-3-small).
const EmbeddingDimension = 1536
