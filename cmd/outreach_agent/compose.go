package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/composition"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/portfolio"
	"github.com/jonathan/cold-outreach/internal/types"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose outreach emails from extracted job records",
	Long:  "Compose one outreach email per job record in a JSON file (as produced by extract), matching portfolio links by skill overlap.",
	RunE:  runCompose,
}

var (
	composeInputFile string
	composeOutDir    string
	composePortfolio string
	composeSender    string
	composeAPIKey    string
)

func init() {
	composeCmd.Flags().StringVarP(&composeInputFile, "in", "i", "", "Path to job records JSON file (required)")
	composeCmd.Flags().StringVarP(&composeOutDir, "out", "o", "", "Directory to write emails into (default: print to stdout)")
	composeCmd.Flags().StringVarP(&composePortfolio, "portfolio", "p", "", "Path to the portfolio CSV")
	composeCmd.Flags().StringVarP(&composeSender, "sender", "s", "", "Name used to sign the emails (required)")
	composeCmd.Flags().StringVar(&composeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	_ = composeCmd.MarkFlagRequired("in")
	_ = composeCmd.MarkFlagRequired("sender")

	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(composeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read job records: %w", err)
	}

	var jobs []types.JobRecord
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("failed to parse job records JSON: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no job records found in %s", composeInputFile)
	}

	ctx := context.Background()

	table, err := portfolio.Load(composePortfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: portfolio unavailable, composing without links: %v\n", err)
	}

	opts := []composition.Option{}
	apiKey := composeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, apiKey, llm.DefaultModel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: generative client unavailable, using template: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			opts = append(opts, composition.WithGenerativeClient(client))
		}
	}
	composer := composition.NewComposer(opts...)

	if composeOutDir != "" {
		if err := os.MkdirAll(composeOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for i, job := range jobs {
		links := table.QueryLinks(job.Skills)
		email := composer.Compose(ctx, job, links, composeSender)

		if composeOutDir == "" {
			fmt.Fprintf(os.Stdout, "--- Email %d/%d: %s ---\n%s\n\n", i+1, len(jobs), job.Role, email)
			continue
		}

		path := fmt.Sprintf("%s/email_%02d.txt", composeOutDir, i+1)
		if err := os.WriteFile(path, []byte(email+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write email %d: %w", i+1, err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s (%s)\n", path, job.Role)
	}

	return nil
}
