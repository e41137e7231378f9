package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"page_url": "https://example.com/careers",
		"sender": "Jordan Smith",
		"portfolio": "portfolio.csv",
		"max_links": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/careers", cfg.PageURL)
	assert.Equal(t, "Jordan Smith", cfg.Sender)
	assert.Equal(t, "portfolio.csv", cfg.Portfolio)
	assert.Equal(t, 5, cfg.MaxLinks)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		PageFile: "careers.txt",
		PageURL:  "https://example.com/careers",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeMaxLinks(t *testing.T) {
	cfg := &Config{
		MaxLinks: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_links")
}

func TestValidate_MissingPageFile(t *testing.T) {
	cfg := &Config{
		PageFile: filepath.Join(t.TempDir(), "does-not-exist.txt"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "page file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Sender:   "Jordan Smith",
		PageURL:  "https://example.com/careers",
		MaxLinks: 5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Sender:    "Default Sender",
		Portfolio: "default.csv",
		APIKey:    "default-key",
		MaxLinks:  7,
	}

	partial := Config{
		Sender:  "Custom Sender",
		PageURL: "https://example.com/jobs",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "Custom Sender", merged.Sender)
	assert.Equal(t, "https://example.com/jobs", merged.PageURL)

	// Default values should fill in empty fields
	assert.Equal(t, "default.csv", merged.Portfolio)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, 7, merged.MaxLinks)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Sender:  "Test",
		PageURL: "https://example.com",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "Test", merged.Sender)
	assert.Equal(t, "https://example.com", merged.PageURL)
}
