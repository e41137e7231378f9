// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Sources
	PageFile string `json:"page_file,omitempty"` // Path to careers page text file
	PageURL  string `json:"page_url,omitempty"`  // URL to fetch the careers page from

	// Candidate Info
	Sender    string `json:"sender,omitempty"`    // Name used to sign composed emails
	Portfolio string `json:"portfolio,omitempty"` // Path to the portfolio CSV

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	Vocab      string `json:"vocab,omitempty"`       // Path to a vocabulary overlay file
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA careers pages
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
	MaxLinks   int    `json:"max_links,omitempty"`   // Maximum portfolio links per email
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.PageFile != "" && c.PageURL != "" {
		return fmt.Errorf("config error: 'page_file' and 'page_url' are mutually exclusive")
	}

	if c.MaxLinks < 0 {
		return fmt.Errorf("config error: 'max_links' must be non-negative")
	}

	if c.PageFile != "" {
		if _, err := os.Stat(c.PageFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: page file not found: %s", c.PageFile)
		}
	}

	if c.Portfolio != "" {
		if _, err := os.Stat(c.Portfolio); os.IsNotExist(err) {
			return fmt.Errorf("config error: portfolio file not found: %s", c.Portfolio)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.PageFile == "" {
		result.PageFile = defaults.PageFile
	}
	if result.PageURL == "" {
		result.PageURL = defaults.PageURL
	}
	if result.Sender == "" {
		result.Sender = defaults.Sender
	}
	if result.Portfolio == "" {
		result.Portfolio = defaults.Portfolio
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Vocab == "" {
		result.Vocab = defaults.Vocab
	}
	if result.MaxLinks == 0 {
		result.MaxLinks = defaults.MaxLinks
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
