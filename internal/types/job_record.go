// Package types defines the shared data structures exchanged between
// extraction, portfolio lookup, and composition.
package types

import (
	"regexp"
	"strings"
)

// Sentinel values used when a field cannot be derived from the source text.
const (
	UnknownRole    = "Unknown role"
	ExperienceNone = "Not specified"
)

// Limits applied during record assembly.
const (
	// MaxSkills caps the skill list per record.
	MaxSkills = 30
	// MaxDescription caps the description length before the ellipsis is added.
	MaxDescription = 2000
	// MaxFallbackDescription caps the description of the synthesized
	// fallback record.
	MaxFallbackDescription = 1500
)

// JobRecord is the canonical output unit of extraction.
// Role is always non-empty; Skills are lower-cased, deduplicated and
// capped at MaxSkills in discovery order.
type JobRecord struct {
	Role        string   `json:"role"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

var nonWordRun = regexp.MustCompile(`\W+`)

// TitleKey returns the normalized deduplication key for a role title:
// non-word characters collapsed to single spaces, lower-cased, trimmed.
func TitleKey(role string) string {
	return strings.ToLower(strings.TrimSpace(nonWordRun.ReplaceAllString(role, " ")))
}

// FallbackRecord synthesizes the guaranteed single record returned when no
// job content could be extracted. The description is the normalized input
// truncated to MaxFallbackDescription characters.
func FallbackRecord(normalizedText string) JobRecord {
	desc := normalizedText
	if len(desc) > MaxFallbackDescription {
		desc = desc[:MaxFallbackDescription]
	}
	return JobRecord{
		Role:        UnknownRole,
		Experience:  ExperienceNone,
		Skills:      []string{},
		Description: desc,
	}
}
