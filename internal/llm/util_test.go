package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n[{\"role\": \"Engineer\"}]\n```"
	assert.Equal(t, `[{"role": "Engineer"}]`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n[1, 2]\n```"
	assert.Equal(t, "[1, 2]", CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(`  {"a": 1}  `))
}

func TestExtractJSONArray_SurroundingProse(t *testing.T) {
	input := "Here are the jobs:\n[{\"role\": \"Analyst\"}]\nLet me know if you need more."
	arr, err := ExtractJSONArray(input)
	require.NoError(t, err)

	assert.Equal(t, `[{"role": "Analyst"}]`, arr)
}

func TestExtractJSONArray_NestedArrays(t *testing.T) {
	input := `prefix [{"skills": ["go", "sql"]}] suffix`
	arr, err := ExtractJSONArray(input)
	require.NoError(t, err)

	assert.Equal(t, `[{"skills": ["go", "sql"]}]`, arr)
}

func TestExtractJSONArray_Missing(t *testing.T) {
	_, err := ExtractJSONArray("no array here")
	assert.Error(t, err)

	_, err = ExtractJSONArray("] backwards [")
	assert.Error(t, err)
}
