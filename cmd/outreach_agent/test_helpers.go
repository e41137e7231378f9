package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// envWithoutAPIKey returns the current environment with GEMINI_API_KEY
// removed, forcing commands onto the heuristic-only paths.
func envWithoutAPIKey() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "GEMINI_API_KEY=") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// getBinaryPath returns the path to the outreach_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "outreach_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}
