package recruiting

import (
	"fmt"
	"strings"

	"github.com/daniel/recruiting-assistant/internal/prompts"
)

// IncompleteResultError indicates the provider returned decodable JSON
// that is missing required top-level fields. The caller decides whether to
// retry the request, surface an error, or accept partial data.
type IncompleteResultError struct {
	Task    prompts.Task
	Missing []string
}

func (e *IncompleteResultError) Error() string {
	return fmt.Sprintf("task %s returned incomplete result, missing fields: %s",
		string(e.Task), strings.Join(e.Missing, ", "))
}
