package schemas

import (
	"embed"
	"fmt"

	"github.com/daniel/recruiting-assistant/internal/prompts"
)

//go:embed contracts/*.json
var contractFiles embed.FS

var contractNames = map[prompts.Task]string{
	prompts.TaskResumeExtraction:        "resume_data.json",
	prompts.TaskEmailGeneration:         "outreach_email.json",
	prompts.TaskExperienceSummarization: "experience_summary.json",
	prompts.TaskJobMatching:             "match_result.json",
}

// ForTask returns the embedded JSON Schema for a task's output contract.
func ForTask(task prompts.Task) (string, error) {
	name, ok := contractNames[task]
	if !ok {
		return "", fmt.Errorf("no output contract for task %q", string(task))
	}

	data, err := contractFiles.ReadFile("contracts/" + name)
	if err != nil {
		return "", &SchemaLoadError{
			Name:    name,
			Message: "failed to read embedded contract",
			Cause:   err,
		}
	}

	return string(data), nil
}

// ValidateTaskOutput validates a decoded task payload (as its JSON text)
// against the task's output contract.
func ValidateTaskOutput(task prompts.Task, jsonContent string) error {
	schema, err := ForTask(task)
	if err != nil {
		return err
	}
	return ValidateJSONString(schema, jsonContent)
}
