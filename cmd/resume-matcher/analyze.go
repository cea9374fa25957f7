package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analyzer"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	analyzeRole    string
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file> <job-description-file>",
	Short: "Score a resume against a job description",
	Long:  `Run a one-shot match analysis on two local files and print the result as JSON. HTML files are converted to plain text before analysis.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role used to pick scoring weights (e.g. \"ml engineer\")")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a formatted report instead of raw JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logging.Setup(os.Getenv("LOG_LEVEL"), true)

	resumeText, err := ingestion.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jdText, err := ingestion.FromFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	ont, err := skills.Default()
	if err != nil {
		return fmt.Errorf("failed to load skill ontology: %w", err)
	}

	ctx := cmd.Context()
	svc := analyzer.New(store.NewMemory(), ont, log)

	resume, err := svc.IngestResume(ctx, resumeText, args[0])
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}
	jd, err := svc.IngestJobDescription(ctx, jdText, args[1])
	if err != nil {
		return fmt.Errorf("failed to ingest job description: %w", err)
	}

	analysis, meta, err := svc.Analyze(ctx, resume.ID, jd.ID, analyzeRole)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintAnalysis(analysis)
		return nil
	}

	out := struct {
		Analysis *types.Analysis       `json:"analysis"`
		Metadata scoring.ScoreMetadata `json:"metadata"`
	}{Analysis: analysis, Metadata: meta}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
