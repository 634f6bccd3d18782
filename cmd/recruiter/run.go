package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/daniel/recruiting-assistant/internal/config"
	"github.com/daniel/recruiting-assistant/internal/llm"
	"github.com/daniel/recruiting-assistant/internal/recruiting"
)

// newService loads configuration and wires the completion client and task
// service. The returned cleanup closes the client.
func newService(ctx context.Context, strict bool) (*recruiting.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	client, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	var opts []recruiting.Option
	if strict {
		opts = append(opts, recruiting.WithStrictContracts())
	}

	cleanup := func() { _ = client.Close() }
	return recruiting.NewService(client, opts...), cleanup, nil
}

// readInput returns the contents of path, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// printJSON writes the result as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
