package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/daniel/recruiting-assistant/internal/config"
)

// DefaultTimeout is the HTTP request timeout for index calls.
const DefaultTimeout = 30 * time.Second

// Searcher is the narrow interface callers use for candidate discovery.
type Searcher interface {
	UploadDocuments(ctx context.Context, docs []CandidateDocument) error
	Search(ctx context.Context, query Query) ([]CandidateDocument, error)
}

// Client talks to the hosted search index REST API.
type Client struct {
	endpoint   string
	apiKey     string
	indexName  string
	httpClient *http.Client
}

// NewClient creates a search client from configuration. All three search
// values are required here even though Load treats them as optional.
func NewClient(cfg config.Search) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, &config.MissingEnvError{Variable: "SEARCH_ENDPOINT"}
	}
	if cfg.APIKey == "" {
		return nil, &config.MissingEnvError{Variable: "SEARCH_API_KEY"}
	}
	if cfg.IndexName == "" {
		return nil, &config.MissingEnvError{Variable: "SEARCH_INDEX_NAME"}
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		indexName:  cfg.IndexName,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// UploadDocuments sends candidate documents to the index.
func (c *Client) UploadDocuments(ctx context.Context, docs []CandidateDocument) error {
	if len(docs) == 0 {
		return nil
	}

	body := struct {
		Value []CandidateDocument `json:"value"`
	}{Value: docs}

	url := fmt.Sprintf("%s/indexes/%s/docs/index", c.endpoint, c.indexName)
	var resp struct{}
	if err := c.post(ctx, url, body, &resp); err != nil {
		return fmt.Errorf("failed to upload %d documents: %w", len(docs), err)
	}
	return nil
}

// Search runs a query against the candidate index.
func (c *Client) Search(ctx context.Context, query Query) ([]CandidateDocument, error) {
	url := fmt.Sprintf("%s/indexes/%s/docs/search", c.endpoint, c.indexName)

	var resp struct {
		Value []CandidateDocument `json:"value"`
	}
	if err := c.post(ctx, url, query, &resp); err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	return resp.Value, nil
}

func (c *Client) post(ctx context.Context, url string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("index returned HTTP %d: %s", resp.StatusCode, string(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
