// Package portfolio provides the reference-link lookup backed by a CSV
// table of title,url,skills rows. The table is loaded once at construction
// and is read-only at runtime.
package portfolio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// MaxLinks caps the number of URLs returned per query.
const MaxLinks = 10

type entry struct {
	title  string
	url    string
	skills []string
}

// Portfolio is an immutable in-memory table of skill-tagged reference links.
type Portfolio struct {
	entries []entry
}

// Load reads the CSV table at path. The expected header names a title, a
// url, and a comma-separated skills column, in any order. An inaccessible
// or malformed file degrades to an empty table; the returned error is
// informational and the Portfolio is always usable.
func Load(path string) (*Portfolio, error) {
	p := &Portfolio{}

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("failed to open portfolio file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return p, fmt.Errorf("failed to parse portfolio CSV %s: %w", path, err)
	}
	if len(rows) == 0 {
		return p, nil
	}

	titleIdx, urlIdx, skillsIdx := headerIndexes(rows[0])
	if urlIdx == -1 {
		return p, fmt.Errorf("portfolio CSV %s has no url column", path)
	}

	for _, row := range rows[1:] {
		e := entry{
			title:  field(row, titleIdx),
			url:    field(row, urlIdx),
			skills: SplitSkills(field(row, skillsIdx)),
		}
		if e.url == "" {
			continue
		}
		p.entries = append(p.entries, e)
	}
	return p, nil
}

func headerIndexes(header []string) (titleIdx, urlIdx, skillsIdx int) {
	titleIdx, urlIdx, skillsIdx = -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			titleIdx = i
		case "url":
			urlIdx = i
		case "skills":
			skillsIdx = i
		}
	}
	return titleIdx, urlIdx, skillsIdx
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// SplitSkills parses a comma-separated skills string into trimmed,
// lower-cased terms.
func SplitSkills(s string) []string {
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// Len returns the number of loaded rows.
func (p *Portfolio) Len() int {
	return len(p.entries)
}

// QueryLinks returns up to MaxLinks URLs whose skill tags overlap the query
// terms by case-insensitive substring match in either direction, in table
// order with duplicates removed. An empty query returns all URLs, with the
// same cap.
func (p *Portfolio) QueryLinks(skills []string) []string {
	query := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			query = append(query, s)
		}
	}

	var links []string
	seen := make(map[string]bool)
	for _, e := range p.entries {
		if len(query) > 0 && !overlaps(query, e.skills) {
			continue
		}
		if seen[e.url] {
			continue
		}
		seen[e.url] = true
		links = append(links, e.url)
		if len(links) == MaxLinks {
			break
		}
	}
	return links
}

func overlaps(query, tags []string) bool {
	for _, q := range query {
		for _, tag := range tags {
			if strings.Contains(tag, q) || strings.Contains(q, tag) {
				return true
			}
		}
	}
	return false
}
