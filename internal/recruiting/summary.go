package recruiting

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniel/recruiting-assistant/internal/prompts"
)

// SummarizeExperience condenses a candidate's work history into a short
// recruiter-facing digest.
func (s *Service) SummarizeExperience(ctx context.Context, workHistory string) (*ExperienceSummary, error) {
	if strings.TrimSpace(workHistory) == "" {
		return nil, fmt.Errorf("work history is empty")
	}

	return runTask[ExperienceSummary](ctx, s, prompts.TaskExperienceSummarization, map[string]string{
		"workHistory": workHistory,
	})
}
