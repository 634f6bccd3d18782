package recruiting

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/daniel/recruiting-assistant/internal/prompts"
)

// maxConcurrentMatches bounds how many gateway calls a batch match may
// have in flight at once.
const maxConcurrentMatches = 4

// MatchCandidate evaluates how well a candidate profile fits a set of job
// requirements.
func (s *Service) MatchCandidate(ctx context.Context, candidateProfile, jobRequirements string) (*MatchResult, error) {
	if strings.TrimSpace(candidateProfile) == "" {
		return nil, fmt.Errorf("candidate profile is empty")
	}
	if strings.TrimSpace(jobRequirements) == "" {
		return nil, fmt.Errorf("job requirements are empty")
	}

	return runTask[MatchResult](ctx, s, prompts.TaskJobMatching, map[string]string{
		"candidateProfile": candidateProfile,
		"jobRequirements":  jobRequirements,
	})
}

// MatchCandidateToJobs evaluates one candidate against several postings
// concurrently. Results preserve the input order; the first error cancels
// the remaining evaluations.
func (s *Service) MatchCandidateToJobs(ctx context.Context, candidateProfile string, jobs []JobPosting) ([]JobMatch, error) {
	matches := make([]JobMatch, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMatches)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			result, err := s.MatchCandidate(gctx, candidateProfile, job.Requirements)
			if err != nil {
				return fmt.Errorf("match against %q failed: %w", job.Title, err)
			}
			matches[i] = JobMatch{Job: job, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}
