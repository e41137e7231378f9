package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/extraction"
	"github.com/jonathan/cold-outreach/internal/fetch"
	"github.com/jonathan/cold-outreach/internal/ingestion"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract job records from a careers page",
	Long:  "Extract structured job records from a careers page text file or URL and write them as JSON validating against the job_records schema.",
	RunE:  runExtract,
}

var (
	extractTextFile   string
	extractURL        string
	extractOutputFile string
	extractVocabPath  string
	extractAPIKey     string
	extractUseBrowser bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractTextFile, "text-file", "t", "", "Path to text file containing the careers page")
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL to fetch the careers page from")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (required)")
	extractCmd.Flags().StringVar(&extractVocabPath, "vocab", "", "Path to a YAML vocabulary overlay file")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Use headless browser for SPA careers pages (requires Chrome)")

	_ = extractCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractTextFile == "" && extractURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if extractTextFile != "" && extractURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	var rawText string
	if extractTextFile != "" {
		text, err := ingestion.IngestFromFile(extractTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
		rawText = text
	} else {
		result, err := fetch.CareerPage(ctx, extractURL, nil, extractUseBrowser, false)
		if err != nil {
			return fmt.Errorf("failed to fetch careers page: %w", err)
		}
		rawText = result.Text
	}

	opts := []extraction.Option{}

	// Delegated extraction runs only when a key is available.
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, apiKey, llm.DefaultModel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: generative client unavailable, using heuristics: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			opts = append(opts, extraction.WithGenerativeClient(client))
		}
	}

	if extractVocabPath != "" {
		vocab, err := extraction.LoadVocabulary(extractVocabPath)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		opts = append(opts, extraction.WithVocabulary(vocab))
	}

	extractor := extraction.NewExtractor(opts...)
	jobs := extractor.ExtractJobs(ctx, rawText)

	jsonBytes, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath(schemas.JobRecordsSchema)
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, extractOutputFile); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d job records\n", len(jobs))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)

	return nil
}
