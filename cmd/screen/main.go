// Package main provides a command-line client that screens local resume files
// through the Resume Screener API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-screener/internal/client"
)

var (
	apiURL      string
	uploadedBy  string
	concurrency int
)

var rootCmd = &cobra.Command{
	Use:   "screen [files...]",
	Short: "Upload and screen resume files",
	Long:  "Uploads each PDF, DOCX or TXT resume and runs it through the screening pipeline. Files that are not accepted are reported and never sent.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScreen,
}

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()

	defaultAPI := os.Getenv("SCREENER_API_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:3000"
	}

	rootCmd.Flags().StringVar(&apiURL, "api", defaultAPI, "Base URL of the Resume Screener API (or SCREENER_API_URL)")
	rootCmd.Flags().StringVar(&uploadedBy, "uploaded-by", "", "Identifier of the uploader (required)")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "c", client.DefaultConcurrency, "Number of files screened at the same time")

	if err := rootCmd.MarkFlagRequired("uploaded-by"); err != nil {
		panic(fmt.Sprintf("failed to mark uploaded-by flag as required: %v", err))
	}
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes := client.Run(ctx, client.New(apiURL), args, client.Options{
		UploadedBy:  uploadedBy,
		Concurrency: concurrency,
	})

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s: %v\n", outcome.Path, outcome.Err)
			continue
		}

		analysis := outcome.Response.Analysis
		if analysis == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: resume_id=%s\n", outcome.Path, outcome.Response.ResumeID)
			continue
		}
		name := "unknown"
		if analysis.CandidateName != nil {
			name = *analysis.CandidateName
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: %s → %s (%d%%, %d skills) resume_id=%s\n",
			outcome.Path, name, analysis.PredictedCategory, analysis.ConfidenceScore, analysis.SkillsCount, outcome.Response.ResumeID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
