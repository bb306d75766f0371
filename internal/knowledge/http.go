package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPSearcher calls a remote knowledge search API. The wire contract is
// POST {base}/search with {"query", "max_results"} authenticated by an
// X-API-Key header, answered by {"answer", "sources", "total_results"}.
type HTTPSearcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPSearcher creates a searcher against the given API base URL
func NewHTTPSearcher(baseURL, apiKey string) *HTTPSearcher {
	return &HTTPSearcher{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// Search runs one search request. Missing credentials are an error here;
// the retriever above absorbs it into "nothing found".
func (s *HTTPSearcher) Search(ctx context.Context, query string, maxResults int) (*SearchResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("knowledge API key not configured")
	}

	body, err := json.Marshal(searchRequest{Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("X-API-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("knowledge API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("knowledge API error: status %d", resp.StatusCode)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return &result, nil
}
