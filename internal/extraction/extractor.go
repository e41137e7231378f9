package extraction

import (
	"context"

	"github.com/jonathan/cold-outreach/internal/ingestion"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/types"
)

// Extractor runs the full extraction cascade. Capabilities (a generative
// collaborator, markup-aware segmentation) are injected at construction;
// there is no ambient global state and no shared mutable state across calls.
type Extractor struct {
	vocab     *Vocabulary
	noise     *NoiseClassifier
	segmenter *Segmenter
	fields    *FieldExtractor
	gen       llm.Client
	markup    bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithGenerativeClient enables the delegated extraction path. A nil client
// leaves the heuristic pipeline as the only path.
func WithGenerativeClient(client llm.Client) Option {
	return func(e *Extractor) { e.gen = client }
}

// WithMarkupSegmentation toggles the HTML-structural segmentation strategy.
func WithMarkupSegmentation(enabled bool) Option {
	return func(e *Extractor) { e.markup = enabled }
}

// WithVocabulary replaces the default pattern tables.
func WithVocabulary(vocab *Vocabulary) Option {
	return func(e *Extractor) { e.vocab = vocab }
}

// NewExtractor builds an extractor. Markup segmentation is enabled by
// default since the parser is always available.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		vocab:  DefaultVocabulary(),
		markup: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.noise = NewNoiseClassifier(e.vocab)
	e.segmenter = NewSegmenter(e.vocab, e.noise, e.markup)
	e.fields = NewFieldExtractor(e.vocab)
	return e
}

// ExtractJobs extracts job records from raw career-page text. It is total:
// for any input, including empty, it returns a non-empty list of records
// with non-empty roles and never returns an error to the caller.
//
// The delegated generative path, when configured and successful, is
// preferred over every heuristic strategy; any delegation failure falls
// through silently.
func (e *Extractor) ExtractJobs(ctx context.Context, rawText string) []types.JobRecord {
	text := ingestion.CleanText(rawText)

	if e.gen != nil {
		if records, err := delegateExtraction(ctx, e.gen, text); err == nil {
			return records
		}
	}

	var records []types.JobRecord
	seenTitles := make(map[string]bool)
	for _, block := range e.segmenter.Segment(text) {
		// Final gate: segmentation already filters noise, but the block may
		// have been produced by a structural scan over mixed content.
		if e.noise.IsNoise(block) {
			continue
		}
		rec := e.fields.ExtractFields(block)
		key := types.TitleKey(rec.Role)
		if rec.Role == "" || seenTitles[key] {
			continue
		}
		seenTitles[key] = true
		records = append(records, rec)
	}

	if len(records) == 0 {
		return []types.JobRecord{types.FallbackRecord(text)}
	}
	return records
}
