package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

const (
	minTitleLength = 3
	maxTitleLength = 120
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	multiSpace    = regexp.MustCompile(`\s{2,}`)
	ctaTail       = regexp.MustCompile(`(?i)\b(view job|apply|learn more|see details)\b.*`)
	separatorTail = regexp.MustCompile(`[-—|·]+\s*$`)
	parenTail     = regexp.MustCompile(`\s*\([^)]+\)\s*$`)
	expPattern    = regexp.MustCompile(`(?i)\b(\d+\+?\s+years|\d+\s+years|mid[- ]level|senior|junior|entry|intern)\b`)
	bulletLine    = regexp.MustCompile(`(?m)^[-*•·]\s*(.+)$`)
	phraseSplit   = regexp.MustCompile(`[;,/]|\sand\s|\sor\s`)
	labelSplit    = regexp.MustCompile(`[,/;]`)
	inlineLabel   = regexp.MustCompile(`(?i)\b(?:skills|requirements|tech stack)\s*:\s*([^\n]+)`)
	skillBadChars = regexp.MustCompile(`[^a-z0-9+#.\- ]`)
)

// FieldExtractor derives role title, experience level, skill list, and a
// trimmed description from a candidate block using layered heuristics.
// It never fails: missing fields degrade to their documented sentinels.
type FieldExtractor struct {
	vocab       *Vocabulary
	roleLine    *regexp.Regexp
	skillHeader *regexp.Regexp
	skillWords  []*regexp.Regexp
	stopwords   map[string]bool
}

// NewFieldExtractor compiles the vocabulary into the matchers used per block.
func NewFieldExtractor(vocab *Vocabulary) *FieldExtractor {
	roleAlts := make([]string, 0, len(vocab.RoleKeywords))
	for _, kw := range vocab.RoleKeywords {
		roleAlts = append(roleAlts, regexp.QuoteMeta(kw))
	}
	headerAlts := make([]string, 0, len(vocab.SkillHeaders))
	for _, h := range vocab.SkillHeaders {
		headerAlts = append(headerAlts, regexp.QuoteMeta(h))
	}
	skillWords := make([]*regexp.Regexp, 0, len(vocab.SkillKeywords))
	for _, kw := range vocab.SkillKeywords {
		skillWords = append(skillWords, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(kw))+`\b`))
	}
	stopwords := make(map[string]bool, len(vocab.Stopwords))
	for _, w := range vocab.Stopwords {
		stopwords[strings.ToLower(w)] = true
	}

	return &FieldExtractor{
		vocab:       vocab,
		roleLine:    regexp.MustCompile(`(?i)\b(` + strings.Join(roleAlts, "|") + `)\b`),
		skillHeader: regexp.MustCompile(`(?is)(` + strings.Join(headerAlts, "|") + `)[\s:.-]*`),
		skillWords:  skillWords,
		stopwords:   stopwords,
	}
}

// ExtractFields derives a JobRecord from one candidate block. Deduplication
// against other blocks is the assembler's responsibility.
func (f *FieldExtractor) ExtractFields(block string) types.JobRecord {
	lines := nonEmptyLines(block)
	title, titleIdx := f.extractTitle(lines)

	return types.JobRecord{
		Role:        title,
		Experience:  f.extractExperience(block),
		Skills:      f.extractSkills(block, title),
		Description: buildDescription(lines, titleIdx),
	}
}

// extractTitle scans the first lines for one matching the role vocabulary,
// falling back to the first non-empty line, and cleans the result. The
// returned index is the line the title came from, or -1.
func (f *FieldExtractor) extractTitle(lines []string) (string, int) {
	title := ""
	titleIdx := -1
	limit := min(len(lines), maxTitleScanLines)
	for i := 0; i < limit; i++ {
		ln := lines[i]
		if f.roleLine.MatchString(ln) && len(ln) > minTitleLength && len(ln) < maxTitleLength {
			title = ln
			titleIdx = i
			break
		}
	}
	if title == "" && len(lines) > 0 {
		title = lines[0]
		titleIdx = 0
	}
	return cleanTitle(title), titleIdx
}

// cleanTitle collapses whitespace and strips call-to-action tails, trailing
// separator runs, and a trailing parenthetical.
func cleanTitle(s string) string {
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	s = strings.TrimSpace(ctaTail.ReplaceAllString(s, ""))
	s = strings.TrimSpace(separatorTail.ReplaceAllString(s, ""))
	s = strings.TrimSpace(parenTail.ReplaceAllString(s, ""))
	return s
}

func (f *FieldExtractor) extractExperience(block string) string {
	if m := expPattern.FindString(block); m != "" {
		return m
	}
	return types.ExperienceNone
}

// extractSkills applies the layered skill heuristics; the first layer that
// survives cleaning wins.
func (f *FieldExtractor) extractSkills(block, title string) []string {
	layers := [][]string{
		f.skillsFromHeader(block),
		skillsFromInlineLabel(block),
		f.skillsFromTitle(title),
		f.skillsFromKeywordScan(block),
	}
	for _, candidates := range layers {
		if skills := f.cleanSkills(candidates); len(skills) > 0 {
			return skills
		}
	}
	return []string{}
}

// skillsFromHeader locates a requirements-type header and collects the
// bullet lines that follow it, or short phrases from the next few lines
// when no bullets are present.
func (f *FieldExtractor) skillsFromHeader(block string) []string {
	loc := f.skillHeader.FindStringSubmatchIndex(block)
	if loc == nil {
		return nil
	}
	tail := block[loc[3]:] // text after the header word itself

	bullets := bulletLine.FindAllStringSubmatch(tail, -1)
	if len(bullets) > 0 {
		candidates := make([]string, 0, len(bullets))
		for _, b := range bullets {
			candidates = append(candidates, b[1])
		}
		return candidates
	}

	lines := nonEmptyLines(tail)
	if len(lines) > 3 {
		lines = lines[:3]
	}
	return phraseSplit.Split(strings.Join(lines, " "), -1)
}

// skillsFromInlineLabel matches an inline "skills:"-style label followed by
// a separated phrase.
func skillsFromInlineLabel(block string) []string {
	m := inlineLabel.FindStringSubmatch(block)
	if m == nil {
		return nil
	}
	return labelSplit.Split(m[1], -1)
}

// skillsFromTitle keeps title tokens present in the curated skill list.
func (f *FieldExtractor) skillsFromTitle(title string) []string {
	var found []string
	lower := strings.ToLower(title)
	for i, pattern := range f.skillWords {
		if pattern.MatchString(lower) {
			found = append(found, f.vocab.SkillKeywords[i])
		}
	}
	return found
}

// skillsFromKeywordScan searches the whole block for curated skill keywords.
func (f *FieldExtractor) skillsFromKeywordScan(block string) []string {
	var found []string
	lower := strings.ToLower(block)
	for i, pattern := range f.skillWords {
		if pattern.MatchString(lower) {
			found = append(found, f.vocab.SkillKeywords[i])
		}
	}
	return found
}

// cleanSkills lower-cases, strips stray punctuation, drops short tokens and
// stopwords, and deduplicates preserving first-seen order, capped at
// types.MaxSkills.
func (f *FieldExtractor) cleanSkills(candidates []string) []string {
	var skills []string
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		s := strings.ToLower(strings.TrimSpace(c))
		s = skillBadChars.ReplaceAllString(s, "")
		s = strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
		if len(s) < 2 || f.stopwords[s] || seen[s] {
			continue
		}
		seen[s] = true
		skills = append(skills, s)
		if len(skills) == types.MaxSkills {
			break
		}
	}
	return skills
}

// buildDescription joins the block's lines minus the title line when the
// title was the first line, and truncates with an ellipsis marker.
func buildDescription(lines []string, titleIdx int) string {
	if titleIdx == 0 && len(lines) > 0 {
		lines = lines[1:]
	}
	desc := strings.TrimSpace(multiSpace.ReplaceAllString(strings.Join(lines, " "), " "))
	if len(desc) > types.MaxDescription {
		desc = desc[:types.MaxDescription] + "..."
	}
	return desc
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, ln := range strings.Split(block, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
