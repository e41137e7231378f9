package extraction

import (
	"regexp"
	"strings"
)

const (
	// minWordTokens is the minimum number of word tokens for a block to
	// count as content.
	minWordTokens = 4
	// digitRunThreshold and digitRunMinLength guard against dense numeric
	// filter widgets (salary sliders, result counters).
	digitRunThreshold = 6
	digitRunMinLength = 200
)

var (
	wordToken  = regexp.MustCompile(`\w+`)
	pagination = regexp.MustCompile(`(?i)\bpage \d+\b`)
	digitRun   = regexp.MustCompile(`\d{2,}`)
)

// NoiseClassifier flags text blocks that are navigation or filter chrome
// rather than job content. It is a pure predicate.
type NoiseClassifier struct {
	phrases []string
}

// NewNoiseClassifier builds a classifier from the vocabulary's noise phrases.
func NewNoiseClassifier(vocab *Vocabulary) *NoiseClassifier {
	phrases := make([]string, 0, len(vocab.NoisePhrases))
	for _, p := range vocab.NoisePhrases {
		phrases = append(phrases, strings.ToLower(p))
	}
	return &NoiseClassifier{phrases: phrases}
}

// IsNoise reports whether the block is navigation/filter chrome: too few
// word tokens, a known chrome phrase or pagination pattern, or a long block
// dominated by numeric runs.
func (c *NoiseClassifier) IsNoise(block string) bool {
	if len(wordToken.FindAllString(block, minWordTokens)) < minWordTokens {
		return true
	}

	lower := strings.ToLower(block)
	for _, phrase := range c.phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	if pagination.MatchString(block) {
		return true
	}

	if len(block) > digitRunMinLength &&
		len(digitRun.FindAllString(block, digitRunThreshold+1)) > digitRunThreshold {
		return true
	}

	return false
}
