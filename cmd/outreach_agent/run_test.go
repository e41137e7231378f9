package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_MissingSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --text-file or --url must be provided")
}

func TestRunCommand_BothSources(t *testing.T) {
	binaryPath := getBinaryPath(t)

	testFile := filepath.Join(t.TempDir(), "careers.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0644))

	cmd := exec.Command(binaryPath, "run", "--text-file", testFile, "--url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestRunCommand_EndToEnd(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "careers.txt")
	require.NoError(t, os.WriteFile(testFile, []byte(extractTestPage), 0644))

	portfolioFile := filepath.Join(tmpDir, "portfolio.csv")
	portfolioContent := "title,url,skills\nBackend API,https://portfolio.example/api,\"python,aws\"\n"
	require.NoError(t, os.WriteFile(portfolioFile, []byte(portfolioContent), 0644))

	cmd := exec.Command(binaryPath, "run",
		"--text-file", testFile,
		"--portfolio", portfolioFile,
		"--sender", "Jordan Smith")
	cmd.Env = envWithoutAPIKey()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	assert.Contains(t, string(output), "Jordan Smith")
	assert.Contains(t, string(output), "--- Email 1/")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "careers.txt")
	require.NoError(t, os.WriteFile(testFile, []byte(extractTestPage), 0644))

	cfg := map[string]any{
		"page_file": testFile,
		"sender":    "Config Sender",
	}
	cfgBytes, err := json.Marshal(cfg)
	require.NoError(t, err)

	cfgFile := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(cfgFile, cfgBytes, 0644))

	cmd := exec.Command(binaryPath, "run", "--config", cfgFile)
	cmd.Env = envWithoutAPIKey()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	assert.Contains(t, string(output), "Config Sender")
}

func TestRunCommand_FlagOverridesConfig(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "careers.txt")
	require.NoError(t, os.WriteFile(testFile, []byte(extractTestPage), 0644))

	cfg := map[string]any{
		"page_file": testFile,
		"sender":    "Config Sender",
	}
	cfgBytes, err := json.Marshal(cfg)
	require.NoError(t, err)

	cfgFile := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(cfgFile, cfgBytes, 0644))

	cmd := exec.Command(binaryPath, "run", "--config", cfgFile, "--sender", "Flag Sender")
	cmd.Env = envWithoutAPIKey()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	assert.Contains(t, string(output), "Flag Sender")
	assert.NotContains(t, string(output), "Config Sender")
}
