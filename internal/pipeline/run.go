// Package pipeline provides the high-level orchestration for the outreach
// generation process: ingest a careers page, extract job records, match
// portfolio links, and compose one email per job.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/jonathan/cold-outreach/internal/composition"
	"github.com/jonathan/cold-outreach/internal/extraction"
	"github.com/jonathan/cold-outreach/internal/fetch"
	"github.com/jonathan/cold-outreach/internal/ingestion"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/observability"
	"github.com/jonathan/cold-outreach/internal/portfolio"
	"github.com/jonathan/cold-outreach/internal/types"
)

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	PageFile      string
	PageURL       string
	PortfolioPath string
	SenderName    string
	VocabPath     string
	APIKey        string
	UseBrowser    bool
	Verbose       bool
	MaxLinks      int

	// Out receives progress output; defaults to os.Stdout.
	Out io.Writer

	// Client overrides the generative client derived from APIKey.
	// Used by tests to inject a fake.
	Client llm.Client

	// Rand overrides the composer's random source.
	Rand *rand.Rand
}

// OutreachResult pairs one extracted job with its matched links and
// composed email.
type OutreachResult struct {
	Job   types.JobRecord
	Links []string
	Email string
}

// Run executes the full pipeline and returns one result per extracted job.
func Run(ctx context.Context, opts RunOptions) ([]OutreachResult, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	// Step 1: obtain raw page text.
	var rawText string
	switch {
	case opts.PageURL != "":
		fmt.Fprintf(out, "Step 1/4: Fetching careers page: %s...\n", opts.PageURL)
		result, err := fetch.CareerPage(ctx, opts.PageURL, nil, opts.UseBrowser, opts.Verbose)
		if err != nil {
			return nil, fmt.Errorf("fetching careers page failed: %w", err)
		}
		rawText = result.Text
	case opts.PageFile != "":
		fmt.Fprintf(out, "Step 1/4: Reading careers page from file: %s...\n", opts.PageFile)
		text, err := ingestion.IngestFromFile(opts.PageFile)
		if err != nil {
			return nil, fmt.Errorf("reading careers page failed: %w", err)
		}
		rawText = text
	default:
		return nil, fmt.Errorf("either a page file or a page URL must be provided")
	}

	// Step 2: build the extractor and pull job records.
	client := opts.Client
	if client == nil && opts.APIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, opts.APIKey, llm.DefaultModel)
		if err != nil {
			fmt.Fprintf(out, "Warning: generative client unavailable: %v\n", err)
			fmt.Fprintf(out, "Continuing with heuristic extraction...\n")
		} else {
			client = geminiClient
			defer func() { _ = geminiClient.Close() }()
		}
	}

	extractorOpts := []extraction.Option{extraction.WithMarkupSegmentation(true)}
	if client != nil {
		extractorOpts = append(extractorOpts, extraction.WithGenerativeClient(client))
	}
	if opts.VocabPath != "" {
		vocab, err := extraction.LoadVocabulary(opts.VocabPath)
		if err != nil {
			return nil, fmt.Errorf("loading vocabulary failed: %w", err)
		}
		extractorOpts = append(extractorOpts, extraction.WithVocabulary(vocab))
	}
	extractor := extraction.NewExtractor(extractorOpts...)

	fmt.Fprintf(out, "Step 2/4: Extracting job records...\n")
	jobs := extractor.ExtractJobs(ctx, rawText)
	if opts.Verbose {
		for i := range jobs {
			printer.PrintJobRecord(i, &jobs[i])
		}
	}

	// Step 3: load the portfolio table. A broken table degrades to empty.
	fmt.Fprintf(out, "Step 3/4: Matching portfolio links...\n")
	table, err := portfolio.Load(opts.PortfolioPath)
	if err != nil && opts.Verbose {
		fmt.Fprintf(out, "Warning: portfolio unavailable: %v\n", err)
	}

	// Step 4: compose one email per job.
	fmt.Fprintf(out, "Step 4/4: Composing outreach emails...\n")
	composerOpts := []composition.Option{}
	if client != nil {
		composerOpts = append(composerOpts, composition.WithGenerativeClient(client))
	}
	if opts.Rand != nil {
		composerOpts = append(composerOpts, composition.WithRand(opts.Rand))
	}
	composer := composition.NewComposer(composerOpts...)

	results := make([]OutreachResult, 0, len(jobs))
	for _, job := range jobs {
		links := table.QueryLinks(job.Skills)
		if opts.MaxLinks > 0 && len(links) > opts.MaxLinks {
			links = links[:opts.MaxLinks]
		}
		if opts.Verbose {
			printer.PrintLinks(links)
		}

		email := composer.Compose(ctx, job, links, opts.SenderName)
		if opts.Verbose {
			printer.PrintEmail(email)
		}

		results = append(results, OutreachResult{Job: job, Links: links, Email: email})
	}

	printer.PrintSummary(len(jobs), len(results))
	return results, nil
}
