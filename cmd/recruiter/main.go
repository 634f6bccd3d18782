// Package main provides the operator CLI for the recruiting assistant.
// Each subcommand runs one AI task end to end against the configured
// completion service, for smoke-testing prompts and contracts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruiter",
	Short: "Recruiting assistant task runner",
	Long:  "Runs the recruiting backend's AI tasks (resume parsing, outreach email generation, experience summarization, candidate-job matching) from the command line.",
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. JSON output so log lines can be
// shipped as-is from the environments this runs in.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
