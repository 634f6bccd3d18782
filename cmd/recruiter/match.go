package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Evaluate a candidate profile against job requirements",
	Long:  "Score how well a candidate profile matches job requirements, with analysis, strengths, gaps, and a recommendation.",
	RunE:  runMatch,
}

var (
	matchProfileFile      string
	matchRequirementsFile string
	matchStrict           bool
)

func init() {
	matchCmd.Flags().StringVar(&matchProfileFile, "profile", "", "Path to candidate profile text file (required)")
	matchCmd.Flags().StringVar(&matchRequirementsFile, "requirements", "", "Path to job requirements text file (required)")
	matchCmd.Flags().BoolVar(&matchStrict, "strict", false, "Validate output against the full JSON Schema contract")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if matchProfileFile == "" || matchRequirementsFile == "" {
		return fmt.Errorf("--profile and --requirements are required")
	}

	logger := newLogger()
	ctx := cmd.Context()

	profile, err := readInput(matchProfileFile)
	if err != nil {
		return err
	}
	requirements, err := readInput(matchRequirementsFile)
	if err != nil {
		return err
	}

	svc, cleanup, err := newService(ctx, matchStrict)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.MatchCandidate(ctx, profile, requirements)
	if err != nil {
		return err
	}

	logger.Info("candidate matched", "score", result.OverallMatchScore)

	return printJSON(result)
}
