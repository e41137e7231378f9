package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleKey_CollapsesNonWordRuns(t *testing.T) {
	assert.Equal(t, TitleKey("Senior Engineer"), TitleKey("Senior -- Engineer"))
	assert.Equal(t, "senior engineer", TitleKey("  Senior   Engineer!  "))
}

func TestTitleKey_CaseInsensitive(t *testing.T) {
	assert.Equal(t, TitleKey("Backend Engineer"), TitleKey("BACKEND ENGINEER"))
}

func TestFallbackRecord_EmptyInput(t *testing.T) {
	rec := FallbackRecord("")

	assert.Equal(t, UnknownRole, rec.Role)
	assert.Equal(t, ExperienceNone, rec.Experience)
	assert.NotNil(t, rec.Skills)
	assert.Empty(t, rec.Skills)
	assert.Empty(t, rec.Description)
}

func TestFallbackRecord_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", MaxFallbackDescription+500)
	rec := FallbackRecord(long)

	assert.Len(t, rec.Description, MaxFallbackDescription)
}
