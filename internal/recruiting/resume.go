package recruiting

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniel/recruiting-assistant/internal/prompts"
)

// ParseResume extracts structured candidate data from raw resume text.
func (s *Service) ParseResume(ctx context.Context, resumeText string) (*ResumeData, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	return runTask[ResumeData](ctx, s, prompts.TaskResumeExtraction, map[string]string{
		"resumeText": resumeText,
	})
}
