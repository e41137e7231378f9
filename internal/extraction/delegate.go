package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/prompts"
	"github.com/jonathan/cold-outreach/internal/types"
)

// delegatedJob mirrors the JSON shape requested from the collaborator.
// Skills tolerates both an array and a single separated string.
type delegatedJob struct {
	Role        string    `json:"role"`
	Experience  string    `json:"experience"`
	Skills      skillList `json:"skills"`
	Description string    `json:"description"`
}

type skillList []string

func (s *skillList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		var parts []string
		for _, p := range strings.FieldsFunc(one, func(r rune) bool { return r == ',' || r == '/' }) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		*s = parts
		return nil
	}
	return fmt.Errorf("skills is neither an array nor a string")
}

// delegateExtraction issues one request to the generative collaborator and
// parses the JSON array from its response. Any failure is returned to the
// caller, which falls through to the heuristic pipeline.
func delegateExtraction(ctx context.Context, client llm.Client, text string) ([]types.JobRecord, error) {
	template := prompts.MustGet("extraction.json", "extract-jobs")
	prompt := prompts.Format(template, map[string]string{"PageText": text})

	response, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("delegated extraction failed: %w", err)
	}

	arrayText, err := llm.ExtractJSONArray(llm.CleanJSONBlock(response))
	if err != nil {
		return nil, err
	}

	var parsed []delegatedJob
	if err := json.Unmarshal([]byte(arrayText), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse delegated extraction JSON: %w", err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("delegated extraction returned an empty array")
	}

	records := make([]types.JobRecord, 0, len(parsed))
	for _, job := range parsed {
		rec := normalizeDelegated(job)
		if rec.Role == "" {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("delegated extraction returned no usable records")
	}
	return records, nil
}

// normalizeDelegated trims the collaborator's fields and applies the same
// sentinels and caps the heuristic pipeline guarantees.
func normalizeDelegated(job delegatedJob) types.JobRecord {
	skills := make([]string, 0, len(job.Skills))
	seen := make(map[string]bool, len(job.Skills))
	for _, s := range job.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		skills = append(skills, s)
		if len(skills) == types.MaxSkills {
			break
		}
	}

	experience := strings.TrimSpace(job.Experience)
	if experience == "" {
		experience = types.ExperienceNone
	}

	desc := strings.TrimSpace(job.Description)
	if len(desc) > types.MaxDescription {
		desc = desc[:types.MaxDescription] + "..."
	}

	return types.JobRecord{
		Role:        strings.TrimSpace(job.Role),
		Experience:  experience,
		Skills:      skills,
		Description: desc,
	}
}
