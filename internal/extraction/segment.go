package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// minBlockLength is the minimum fragment length kept by the text-split
	// strategies and the heading fallback.
	minBlockLength = 30
	// minContainerLength is the minimum text length for a structural
	// container candidate.
	minContainerLength = 20
	// maxTitleScanLines bounds how many leading lines the structural
	// strategy and field extraction inspect; kept here for reuse.
	maxTitleScanLines = 6
)

var blankLineSplit = regexp.MustCompile(`\n{2,}`)

// Segmenter produces candidate job blocks from normalized text. Strategies
// are tried in order and the first one yielding usable blocks wins:
// structural (when markup parsing is enabled), marker split, paragraph
// split. Every produced block passes the noise gate before being returned.
type Segmenter struct {
	vocab       *Vocabulary
	noise       *NoiseClassifier
	markup      bool
	markerSplit *regexp.Regexp
}

// NewSegmenter builds a segmenter. withMarkup enables the structural
// strategy, which parses the input as HTML before falling back to the text
// strategies.
func NewSegmenter(vocab *Vocabulary, noise *NoiseClassifier, withMarkup bool) *Segmenter {
	escaped := make([]string, 0, len(vocab.SplitMarkers))
	for _, m := range vocab.SplitMarkers {
		escaped = append(escaped, regexp.QuoteMeta(m))
	}
	return &Segmenter{
		vocab:       vocab,
		noise:       noise,
		markup:      withMarkup,
		markerSplit: regexp.MustCompile(`(?i)(?:` + strings.Join(escaped, "|") + `)`),
	}
}

// Segment returns the candidate blocks for the given normalized text.
// An empty result means no strategy found usable content; the caller is
// expected to fall back to a synthesized record.
func (s *Segmenter) Segment(text string) []string {
	strategies := []func(string) []string{}
	if s.markup {
		strategies = append(strategies, s.structuralBlocks)
	}
	strategies = append(strategies, s.markerBlocks, s.paragraphBlocks)

	for _, strategy := range strategies {
		blocks := s.filterNoise(strategy(text))
		if len(blocks) > 0 {
			return blocks
		}
	}
	return nil
}

func (s *Segmenter) filterNoise(blocks []string) []string {
	kept := blocks[:0]
	for _, b := range blocks {
		if !s.noise.IsNoise(b) {
			kept = append(kept, b)
		}
	}
	return kept
}

// structuralBlocks scans container-like elements for job-indicator text,
// falling back to the enclosing containers of heading elements.
func (s *Segmenter) structuralBlocks(text string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil
	}

	var blocks []string
	doc.Find("article, li, section, div").Each(func(_ int, sel *goquery.Selection) {
		txt := strings.TrimSpace(selectionText(sel))
		if len(txt) < minContainerLength {
			return
		}
		lower := strings.ToLower(txt)
		for _, indicator := range s.vocab.JobIndicators {
			if strings.Contains(lower, indicator) {
				blocks = append(blocks, txt)
				return
			}
		}
	})

	if len(blocks) > 0 {
		return blocks
	}

	// No indicator hits: take the nearest enclosing container of each
	// heading whose text is long enough to be a posting.
	doc.Find("h1, h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		parent := sel.Parent()
		if parent.Length() == 0 {
			return
		}
		txt := strings.TrimSpace(selectionText(parent))
		if len(txt) > minBlockLength {
			blocks = append(blocks, txt)
		}
	})
	return blocks
}

// markerBlocks splits on job-boundary markers. It returns nil when the
// split produces fewer than two raw fragments so the paragraph strategy
// can take over.
func (s *Segmenter) markerBlocks(text string) []string {
	parts := s.markerSplit.Split(text, -1)
	if len(parts) < 2 {
		return nil
	}
	return trimShort(parts)
}

// paragraphBlocks splits on runs of two or more blank lines.
func (s *Segmenter) paragraphBlocks(text string) []string {
	return trimShort(blankLineSplit.Split(text, -1))
}

func trimShort(parts []string) []string {
	var blocks []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= minBlockLength {
			blocks = append(blocks, p)
		}
	}
	return blocks
}

// selectionText extracts the selection's text with one line per text node,
// preserving the line structure the field heuristics rely on.
func selectionText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
