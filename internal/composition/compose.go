// Package composition renders short outreach emails for extracted job
// records, either by delegating to the generative collaborator or through
// a deterministic template.
package composition

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/prompts"
	"github.com/jonathan/cold-outreach/internal/types"
)

const (
	// maxHighlightedSkills is how many skills the body sentence names.
	maxHighlightedSkills = 3
	// maxListedLinks caps the itemized work-sample list.
	maxListedLinks = 5
)

// subjectTemplates and openingTemplates are the phrasing variants the
// deterministic path picks from; %s is the role title.
var subjectTemplates = []string{
	"Subject: Regarding the %s opening",
	"Subject: Interest in the %s position",
	"Subject: Application for %s",
}

var openingTemplates = []string{
	"I came across the %s opening on your careers page and wanted to introduce myself.",
	"I noticed you are hiring for a %s and thought I would reach out directly.",
	"Your %s listing caught my attention and I believe I would be a strong fit.",
}

// topicPattern pulls a single topical keyword from the description when a
// record carries no skills at all.
var topicPattern = regexp.MustCompile(`(?i)\b(python|java|sales|cloud|data|design|marketing|support|engineering)\b`)

// Composer renders outreach emails. The generative collaborator and the
// random source are injected at construction; with neither set the output
// is the deterministic template with time-seeded phrasing variation.
type Composer struct {
	gen llm.Client
	rng *rand.Rand
}

// Option configures a Composer.
type Option func(*Composer)

// WithGenerativeClient enables the delegated composition path.
func WithGenerativeClient(client llm.Client) Option {
	return func(c *Composer) { c.gen = client }
}

// WithRand injects the random source used for template selection, making
// composition reproducible under test.
func WithRand(rng *rand.Rand) Option {
	return func(c *Composer) { c.rng = rng }
}

// NewComposer builds a composer.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Compose renders an outreach email for one job record and a ranked list
// of reference links. It is total: any delegation failure falls through to
// the deterministic template and the result is never empty.
func (c *Composer) Compose(ctx context.Context, job types.JobRecord, links []string, senderName string) string {
	if c.gen != nil {
		if email, err := c.delegate(ctx, job, links, senderName); err == nil {
			return email
		}
	}
	return c.template(job, links, senderName)
}

// delegate submits one template-filled instruction to the collaborator and
// returns the response verbatim.
func (c *Composer) delegate(ctx context.Context, job types.JobRecord, links []string, senderName string) (string, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to serialize job record: %w", err)
	}

	tmpl := prompts.MustGet("composition.json", "compose-email")
	prompt := prompts.Format(tmpl, map[string]string{
		"Sender":  senderName,
		"JobJSON": string(payload),
		"Links":   strings.Join(links, "\n"),
	})

	response, err := c.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("delegated composition failed: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		return "", fmt.Errorf("delegated composition returned empty text")
	}
	return response, nil
}

// template builds the deterministic email: subject, greeting and intro
// referencing the role, a body sentence naming the skill set, an itemized
// link list, and a closing signature.
func (c *Composer) template(job types.JobRecord, links []string, senderName string) string {
	subject := fmt.Sprintf(subjectTemplates[c.rng.Intn(len(subjectTemplates))], job.Role)
	opening := fmt.Sprintf(openingTemplates[c.rng.Intn(len(openingTemplates))], job.Role)

	var body strings.Builder
	body.WriteString(fmt.Sprintf("I have experience with %s that aligns well with this role.", c.skillPhrase(job)))
	if len(links) > 0 {
		body.WriteString("\nHere are a few relevant work samples:")
		for i, link := range links {
			if i == maxListedLinks {
				break
			}
			body.WriteString("\n- " + link)
		}
	}

	closing := fmt.Sprintf("Would love to discuss how I can contribute to your team.\n\nBest regards,\n%s", senderName)

	return strings.Join([]string{
		subject,
		"Hi,\n\n" + opening,
		body.String(),
		closing,
	}, "\n\n")
}

// skillPhrase names up to three skills, falling back to a topical keyword
// from the description, then to a generic phrase.
func (c *Composer) skillPhrase(job types.JobRecord) string {
	if len(job.Skills) > 0 {
		top := job.Skills
		if len(top) > maxHighlightedSkills {
			top = top[:maxHighlightedSkills]
		}
		return strings.Join(top, ", ")
	}
	if m := topicPattern.FindString(job.Description); m != "" {
		return strings.ToLower(m)
	}
	return "relevant experience"
}
