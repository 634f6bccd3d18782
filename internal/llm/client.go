// Package llm provides the completion-gateway boundary plus the response
// extraction and validation helpers that turn free-form provider output
// into trusted structured data.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/daniel/recruiting-assistant/internal/prompts"
)

// Client is the completion-gateway abstraction. The implementation owns
// authentication and provider errors; no retry policy lives at this layer.
type Client interface {
	// Complete sends a rendered prompt with per-task generation
	// parameters and returns the raw provider text.
	Complete(ctx context.Context, prompt string, params prompts.ParameterSet) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client over Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed completion client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Complete sends the prompt and returns the raw response text.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, params prompts.ParameterSet) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetMaxOutputTokens(params.MaxOutputTokens)
	model.SetTemperature(params.Temperature)
	model.SetTopP(params.TopP)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return textFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// textFromResponse joins the text parts of a Gemini response.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
