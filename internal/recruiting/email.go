package recruiting

import (
	"context"
	"fmt"

	"github.com/daniel/recruiting-assistant/internal/prompts"
)

// GenerateOutreachEmail drafts a personalized outreach email for a
// candidate. The result is returned, not sent; delivery belongs to the
// mailer boundary.
func (s *Service) GenerateOutreachEmail(ctx context.Context, req EmailRequest) (*OutreachEmail, error) {
	if req.CandidateName == "" {
		return nil, fmt.Errorf("candidate name is required")
	}
	if req.JobTitle == "" {
		return nil, fmt.Errorf("job title is required")
	}

	extra := req.AdditionalContext
	if extra == "" {
		extra = "none"
	}

	return runTask[OutreachEmail](ctx, s, prompts.TaskEmailGeneration, map[string]string{
		"candidateName":     req.CandidateName,
		"jobTitle":          req.JobTitle,
		"companyName":       req.CompanyName,
		"recruiterName":     req.RecruiterName,
		"additionalContext": extra,
	})
}
