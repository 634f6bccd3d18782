package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_BareObject(t *testing.T) {
	raw := `{"overallMatchScore": 85, "matchAnalysis": "strong fit"}`

	payload, err := ExtractJSON[map[string]any](raw)
	require.NoError(t, err)
	assert.Equal(t, float64(85), payload["overallMatchScore"])
	assert.Equal(t, "strong fit", payload["matchAnalysis"])
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Here is the result: {"overallMatchScore": 85, "matchAnalysis": "ok"} Hope that helps!`

	payload, err := ExtractJSON[map[string]any](raw)
	require.NoError(t, err)
	assert.Equal(t, float64(85), payload["overallMatchScore"])
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"subject\": \"Hello\", \"body\": \"...\"}\n```"

	payload, err := ExtractJSON[map[string]any](raw)
	require.NoError(t, err)
	assert.Equal(t, "Hello", payload["subject"])
}

func TestExtractJSON_NestedObject(t *testing.T) {
	raw := `Result: {"personalInfo": {"name": "Alice"}, "skills": ["Go"]}`

	payload, err := ExtractJSON[map[string]any](raw)
	require.NoError(t, err)

	info, ok := payload["personalInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", info["name"])
}

func TestExtractJSON_TypedStruct(t *testing.T) {
	type matchResult struct {
		OverallMatchScore int    `json:"overallMatchScore"`
		MatchAnalysis     string `json:"matchAnalysis"`
	}

	raw := `The evaluation: {"overallMatchScore": 72, "matchAnalysis": "partial overlap"}`

	result, err := ExtractJSON[matchResult](raw)
	require.NoError(t, err)
	assert.Equal(t, 72, result.OverallMatchScore)
	assert.Equal(t, "partial overlap", result.MatchAnalysis)
}

func TestExtractJSON_NoBraces(t *testing.T) {
	_, err := ExtractJSON[map[string]any]("I could not produce a result.")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.True(t, errors.Is(err, ErrNoPayload))
}

func TestExtractJSON_MalformedJSON(t *testing.T) {
	_, err := ExtractJSON[map[string]any](`prefix {"broken": } suffix`)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	// Decode failure is distinguishable from "no candidate region".
	assert.False(t, errors.Is(err, ErrNoPayload))
	assert.Contains(t, err.Error(), "decode")
}

func TestExtractJSON_EmptyString(t *testing.T) {
	_, err := ExtractJSON[map[string]any]("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPayload))
}

func TestExtractJSON_OnlyClosingBrace(t *testing.T) {
	_, err := ExtractJSON[map[string]any]("} nothing opens here")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPayload))
}

func TestExtractPayload_FirstBraceLastBrace(t *testing.T) {
	// Two independent objects in one response: the span runs from the
	// first opening brace to the last closing brace and fails to decode.
	// Documented behavior of the heuristic, not something to fix silently.
	raw := `{"a": 1} and {"b": 2}`

	span, err := ExtractPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1} and {"b": 2}`, span)

	_, err = ExtractJSON[map[string]any](raw)
	require.Error(t, err)
}
