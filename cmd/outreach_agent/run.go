package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/config"
	"github.com/jonathan/cold-outreach/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full outreach pipeline end-to-end",
	Long: `Orchestrates the entire outreach process: ingestion -> extraction -> portfolio matching -> composition.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runPageFile   string
	runPageURL    string
	runSender     string
	runPortfolio  string
	runVocab      string
	runMaxLinks   int
	runAPIKey     string
	runUseBrowser bool
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runPageFile, "text-file", "t", "", "Path to careers page text file (mutually exclusive with --url)")
	runCommand.Flags().StringVarP(&runPageURL, "url", "u", "", "URL to fetch the careers page from (mutually exclusive with --text-file)")
	runCommand.Flags().StringVarP(&runSender, "sender", "s", "", "Name used to sign the emails")
	runCommand.Flags().StringVarP(&runPortfolio, "portfolio", "p", "", "Path to the portfolio CSV")
	runCommand.Flags().StringVar(&runVocab, "vocab", "", "Path to a YAML vocabulary overlay file")
	runCommand.Flags().IntVar(&runMaxLinks, "max-links", 0, "Maximum portfolio links per email")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA careers pages (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("text-file") {
		cfg.PageFile = runPageFile
	}
	if cmd.Flags().Changed("url") {
		cfg.PageURL = runPageURL
	}
	if cmd.Flags().Changed("sender") {
		cfg.Sender = runSender
	}
	if cmd.Flags().Changed("portfolio") {
		cfg.Portfolio = runPortfolio
	}
	if cmd.Flags().Changed("vocab") {
		cfg.Vocab = runVocab
	}
	if cmd.Flags().Changed("max-links") {
		cfg.MaxLinks = runMaxLinks
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Sender:    "Your Name",
		Portfolio: "portfolio.csv",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.PageFile == "" && cfg.PageURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided (via flag or config)")
	}
	if cfg.PageFile != "" && cfg.PageURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	// Step 5: API key handling. The pipeline tolerates a missing key by
	// running the heuristic-only paths.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	opts := pipeline.RunOptions{
		PageFile:      cfg.PageFile,
		PageURL:       cfg.PageURL,
		PortfolioPath: cfg.Portfolio,
		SenderName:    cfg.Sender,
		VocabPath:     cfg.Vocab,
		APIKey:        cfg.APIKey,
		UseBrowser:    cfg.UseBrowser,
		Verbose:       cfg.Verbose,
		MaxLinks:      cfg.MaxLinks,
	}

	results, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "--- Email %d/%d: %s ---\n%s\n\n", i+1, len(results), r.Job.Role, r.Email)
	}

	return nil
}
