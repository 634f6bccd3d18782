package recruiting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/daniel/recruiting-assistant/internal/llm"
	"github.com/daniel/recruiting-assistant/internal/prompts"
	"github.com/daniel/recruiting-assistant/internal/schemas"
)

// Service runs the AI tasks against a completion gateway. It holds no
// mutable state beyond the client and is safe for concurrent use.
type Service struct {
	client          llm.Client
	strictContracts bool
}

// Option configures a Service.
type Option func(*Service)

// WithStrictContracts enables full JSON Schema validation of task outputs
// in addition to the shallow required-field check.
func WithStrictContracts() Option {
	return func(s *Service) { s.strictContracts = true }
}

// NewService creates the task service over a completion gateway client.
func NewService(client llm.Client, opts ...Option) *Service {
	s := &Service{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// requiredFields lists the top-level keys a task result must carry before
// the caller may trust it.
var requiredFields = map[prompts.Task][]string{
	prompts.TaskResumeExtraction:        {"personalInfo", "workExperience", "education", "skills"},
	prompts.TaskEmailGeneration:         {"subject", "body"},
	prompts.TaskExperienceSummarization: {"summary", "totalYearsExperience", "keyStrengths", "seniorityLevel"},
	prompts.TaskJobMatching:             {"overallMatchScore", "matchAnalysis"},
}

// runTask executes the full flow for one task: lookup, render, complete,
// extract, validate, decode.
func runTask[T any](ctx context.Context, s *Service, task prompts.Task, vars map[string]string) (*T, error) {
	tmpl, params, err := prompts.Lookup(task)
	if err != nil {
		return nil, err
	}

	prompt := prompts.Render(tmpl.Body, vars)

	raw, err := s.client.Complete(ctx, prompt, params)
	if err != nil {
		return nil, fmt.Errorf("completion failed for task %s: %w", string(task), err)
	}

	span, err := llm.ExtractPayload(raw)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, &llm.ExtractionError{
			Message: "failed to decode JSON payload",
			Cause:   err,
		}
	}

	if !llm.HasRequiredFields(payload, requiredFields[task]) {
		return nil, &IncompleteResultError{
			Task:    task,
			Missing: llm.MissingFields(payload, requiredFields[task]),
		}
	}

	if s.strictContracts {
		if err := schemas.ValidateTaskOutput(task, span); err != nil {
			return nil, err
		}
	}

	var result T
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return nil, &llm.ExtractionError{
			Message: "failed to decode typed result",
			Cause:   err,
		}
	}
	return &result, nil
}
