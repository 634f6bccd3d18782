package main

import (
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract structured candidate data from resume text",
	Long:  "Parse a plain-text resume into structured JSON (personal info, work experience, education, skills, certifications).",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeStrict bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "-", "Path to resume text file (- for stdin)")
	parseResumeCmd.Flags().BoolVar(&parseResumeStrict, "strict", false, "Validate output against the full JSON Schema contract")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	text, err := readInput(parseResumeInput)
	if err != nil {
		return err
	}

	svc, cleanup, err := newService(ctx, parseResumeStrict)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Debug("parsing resume", "bytes", len(text))

	data, err := svc.ParseResume(ctx, text)
	if err != nil {
		return err
	}

	logger.Info("resume parsed",
		"name", data.PersonalInfo.Name,
		"positions", len(data.WorkExperience),
		"skills", len(data.Skills))

	return printJSON(data)
}
