package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniel/recruiting-assistant/internal/recruiting"
)

var outreachCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Generate a personalized candidate outreach email",
	RunE:  runOutreach,
}

var (
	outreachCandidate string
	outreachJobTitle  string
	outreachCompany   string
	outreachRecruiter string
	outreachContext   string
)

func init() {
	outreachCmd.Flags().StringVar(&outreachCandidate, "candidate", "", "Candidate name (required)")
	outreachCmd.Flags().StringVar(&outreachJobTitle, "job-title", "", "Job title (required)")
	outreachCmd.Flags().StringVar(&outreachCompany, "company", "", "Company name")
	outreachCmd.Flags().StringVar(&outreachRecruiter, "recruiter", "", "Recruiter name used to sign the email")
	outreachCmd.Flags().StringVar(&outreachContext, "context", "", "Additional context for personalization")

	rootCmd.AddCommand(outreachCmd)
}

func runOutreach(cmd *cobra.Command, _ []string) error {
	if outreachCandidate == "" || outreachJobTitle == "" {
		return fmt.Errorf("--candidate and --job-title are required")
	}

	logger := newLogger()
	ctx := cmd.Context()

	svc, cleanup, err := newService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	email, err := svc.GenerateOutreachEmail(ctx, recruiting.EmailRequest{
		CandidateName:     outreachCandidate,
		JobTitle:          outreachJobTitle,
		CompanyName:       outreachCompany,
		RecruiterName:     outreachRecruiter,
		AdditionalContext: outreachContext,
	})
	if err != nil {
		return err
	}

	logger.Info("outreach email generated", "subject", email.Subject)

	return printJSON(email)
}
