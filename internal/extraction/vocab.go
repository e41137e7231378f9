// Package extraction turns unstructured career-page text into normalized
// job records via a cascade of strategies: delegated generative extraction,
// HTML-structure-aware block discovery, marker splitting, and paragraph
// splitting, followed by per-block field heuristics and deduplication.
package extraction

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the declarative pattern tables driving the heuristics.
// Keeping them as data rather than inline regexes lets callers extend the
// vocabularies without touching control flow.
type Vocabulary struct {
	// RoleKeywords mark a line as a plausible job title.
	RoleKeywords []string `yaml:"role_keywords"`
	// SplitMarkers are job-boundary phrases used by the marker-split strategy.
	SplitMarkers []string `yaml:"split_markers"`
	// JobIndicators identify container elements holding job content during
	// structural segmentation.
	JobIndicators []string `yaml:"job_indicators"`
	// NoisePhrases flag navigation/filter chrome blocks.
	NoisePhrases []string `yaml:"noise_phrases"`
	// SkillHeaders introduce a requirements/qualifications section.
	SkillHeaders []string `yaml:"skill_headers"`
	// SkillKeywords is the curated skill list used by the title-derived and
	// whole-block fallback layers.
	SkillKeywords []string `yaml:"skill_keywords"`
	// Stopwords are generic tokens rejected as skills.
	Stopwords []string `yaml:"stopwords"`
}

// DefaultVocabulary returns the built-in pattern tables.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		RoleKeywords: []string{
			"engineer", "developer", "manager", "analyst", "designer",
			"intern", "scientist", "specialist", "consultant", "associate",
			"partner", "sales", "support", "marketing", "product",
		},
		SplitMarkers: []string{
			"View Job", "Apply", "Job", "Position", "Openings", "Role", "Careers",
		},
		JobIndicators: []string{
			"view job", "apply", "position", "role", "careers", "openings", "job",
		},
		NoisePhrases: []string{
			"skip to main content", "filter results", "select a language",
			"clear filter", "go to next page", "go to first page",
			"cookie settings", "sort by",
		},
		SkillHeaders: []string{
			"requirements", "qualifications", "skills", "you should have",
			"what we're looking for", "what you'll need",
		},
		SkillKeywords: []string{
			"python", "java", "javascript", "typescript", "go", "react",
			"aws", "gcp", "azure", "sql", "docker", "kubernetes", "excel",
			"machine learning", "nlp", "data", "cloud", "sales",
			"communication", "leadership",
		},
		Stopwords: []string{
			"apply", "job", "jobs", "menu", "careers", "the", "and", "with",
			"for", "you", "our", "team", "role", "position", "a", "an", "of",
			"to", "in", "or", "we", "are",
		},
	}
}

// LoadVocabulary reads a YAML overlay file and merges it over the defaults.
// Only non-empty lists in the file replace the corresponding default table.
func LoadVocabulary(path string) (*Vocabulary, error) {
	vocab := DefaultVocabulary()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var overlay Vocabulary
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	if len(overlay.RoleKeywords) > 0 {
		vocab.RoleKeywords = overlay.RoleKeywords
	}
	if len(overlay.SplitMarkers) > 0 {
		vocab.SplitMarkers = overlay.SplitMarkers
	}
	if len(overlay.JobIndicators) > 0 {
		vocab.JobIndicators = overlay.JobIndicators
	}
	if len(overlay.NoisePhrases) > 0 {
		vocab.NoisePhrases = overlay.NoisePhrases
	}
	if len(overlay.SkillHeaders) > 0 {
		vocab.SkillHeaders = overlay.SkillHeaders
	}
	if len(overlay.SkillKeywords) > 0 {
		vocab.SkillKeywords = overlay.SkillKeywords
	}
	if len(overlay.Stopwords) > 0 {
		vocab.Stopwords = overlay.Stopwords
	}

	return vocab, nil
}
