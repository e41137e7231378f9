package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSegmenter(withMarkup bool) *Segmenter {
	vocab := DefaultVocabulary()
	return NewSegmenter(vocab, NewNoiseClassifier(vocab), withMarkup)
}

func TestSegment_MarkerSplit(t *testing.T) {
	s := newTestSegmenter(false)
	text := "Senior Engineer\nWe build distributed systems with Go and Kubernetes.\nApply\nData Analyst\nCraft SQL dashboards and Excel reports for finance."

	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Senior Engineer")
	assert.Contains(t, blocks[1], "Data Analyst")
}

func TestSegment_MarkerSplitCaseInsensitive(t *testing.T) {
	s := newTestSegmenter(false)
	text := "Senior Engineer\nWe build distributed systems with Go and Kubernetes.\nVIEW JOB\nData Analyst\nCraft SQL dashboards and Excel reports for finance."

	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
}

func TestSegment_DiscardsShortFragments(t *testing.T) {
	s := newTestSegmenter(false)
	text := "tiny\nApply\nData Analyst\nCraft SQL dashboards and Excel reports for finance."

	blocks := s.Segment(text)

	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "Data Analyst")
}

func TestSegment_ParagraphSplitWhenNoMarkers(t *testing.T) {
	s := newTestSegmenter(false)
	text := "Senior Engineer\nBuild distributed systems with Go and Kubernetes daily.\n\nData Analyst\nCraft SQL dashboards and Excel reports for the finance group."

	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Senior Engineer")
	assert.Contains(t, blocks[1], "Data Analyst")
}

func TestSegment_NoiseBlocksDropped(t *testing.T) {
	s := newTestSegmenter(false)
	text := "Filter results and select a language below now\n\nData Analyst\nCraft SQL dashboards and Excel reports for the finance group."

	blocks := s.Segment(text)

	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "Data Analyst")
}

func TestSegment_StructuralContainers(t *testing.T) {
	s := newTestSegmenter(true)
	html := `<html><body>
<article><h3>Senior Backend Engineer</h3><p>Build payment APIs with Go and Postgres.</p><a>View Job</a></article>
<article><h3>Product Designer</h3><p>Own our design system end to end.</p><a>Apply</a></article>
</body></html>`

	blocks := s.Segment(html)

	require.NotEmpty(t, blocks)
	joined := ""
	for _, b := range blocks {
		joined += b + "\n"
	}
	assert.Contains(t, joined, "Senior Backend Engineer")
	assert.Contains(t, joined, "Product Designer")
}

func TestSegment_StructuralHeadingFallback(t *testing.T) {
	s := newTestSegmenter(true)
	// No indicator text anywhere; containers are discovered via headings.
	html := `<html><body><section><h2>Machine Learning Engineer</h2><p>Train and ship ranking models at scale.</p></section></body></html>`

	blocks := s.Segment(html)

	require.NotEmpty(t, blocks)
	assert.Contains(t, blocks[0], "Machine Learning Engineer")
}

func TestSegment_PlainTextSkipsStructural(t *testing.T) {
	s := newTestSegmenter(true)
	text := "Senior Engineer\nBuild distributed systems with Go and Kubernetes daily.\n\nData Analyst\nCraft SQL dashboards and Excel reports for the finance group."

	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
}

func TestSegment_EmptyInput(t *testing.T) {
	s := newTestSegmenter(true)
	assert.Empty(t, s.Segment(""))
}
