package main

import (
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a candidate's work history",
	RunE:  runSummarize,
}

var summarizeInput string

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeInput, "in", "i", "-", "Path to work history text file (- for stdin)")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	history, err := readInput(summarizeInput)
	if err != nil {
		return err
	}

	svc, cleanup, err := newService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := svc.SummarizeExperience(ctx, history)
	if err != nil {
		return err
	}

	logger.Info("experience summarized",
		"years", summary.TotalYearsExperience,
		"seniority", summary.SeniorityLevel)

	return printJSON(summary)
}
