package llm

import (
	"encoding/json"
	"strings"
)

// ExtractPayload locates the JSON object embedded in raw provider output
// and returns that span. Providers routinely wrap the payload in prose, so
// the span is taken from the first '{' to the last '}' after stripping any
// markdown fences. The heuristic is deliberately forgiving of surrounding
// text and deliberately not robust against multiple independent objects or
// prose containing unmatched braces.
func ExtractPayload(raw string) (string, error) {
	cleaned := CleanJSONBlock(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", &ExtractionError{
			Message: "no JSON object found in response",
			Cause:   ErrNoPayload,
		}
	}

	return cleaned[start : end+1], nil
}

// ExtractJSON extracts the embedded JSON object from raw provider output
// and decodes it into T. Extraction performs no shape checking; pair with
// HasRequiredFields before trusting the result.
func ExtractJSON[T any](raw string) (T, error) {
	var result T

	span, err := ExtractPayload(raw)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return result, &ExtractionError{
			Message: "failed to decode JSON payload",
			Cause:   err,
		}
	}

	return result, nil
}
