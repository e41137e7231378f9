package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNoise_TooFewWordTokens(t *testing.T) {
	c := NewNoiseClassifier(DefaultVocabulary())

	assert.True(t, c.IsNoise(""))
	assert.True(t, c.IsNoise("Apply now"))
	assert.True(t, c.IsNoise("— — —"))
	assert.False(t, c.IsNoise("We are hiring engineers in Berlin"))
}

func TestIsNoise_NavigationPhrases(t *testing.T) {
	c := NewNoiseClassifier(DefaultVocabulary())

	assert.True(t, c.IsNoise("Skip to main content and then some"))
	assert.True(t, c.IsNoise("Filter Results by department and location"))
	assert.True(t, c.IsNoise("Please Select a Language to continue browsing"))
	assert.True(t, c.IsNoise("Clear filter and show all current listings"))
}

func TestIsNoise_PaginationPattern(t *testing.T) {
	c := NewNoiseClassifier(DefaultVocabulary())

	assert.True(t, c.IsNoise("Showing results on Page 2 of 10"))
	assert.True(t, c.IsNoise("Filter Results Page 2 of 10 Select a language"))
}

func TestIsNoise_DenseNumericWidget(t *testing.T) {
	c := NewNoiseClassifier(DefaultVocabulary())

	// Long block dominated by multi-digit runs looks like a filter widget.
	widget := strings.Repeat("salary band 100 to 120 results 45 of 300 shown 2024 listings 10 ", 5)
	assert.Greater(t, len(widget), digitRunMinLength)
	assert.True(t, c.IsNoise(widget))
}

func TestIsNoise_RealJobBlock(t *testing.T) {
	c := NewNoiseClassifier(DefaultVocabulary())

	block := "Senior Backend Engineer\nWe build payment infrastructure in Go.\n5+ years of experience required."
	assert.False(t, c.IsNoise(block))
}
