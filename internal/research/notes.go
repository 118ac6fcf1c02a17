package research

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/fetch"
)

// Note is one cited research finding about a college.
type Note struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Note  string `json:"note"`
}

// noteKeywords score sentences for relevance to an advisee.
var noteKeywords = []string{
	"admission", "apply", "application", "deadline",
	"tuition", "scholarship", "financial aid", "grant",
	"transfer", "degree", "program", "major",
	"enrollment", "student", "campus", "graduate",
}

const (
	fetchTimeout     = 10 * time.Second
	maxNoteSentences = 2
	maxNoteLength    = 400
	minSentenceLen   = 40
)

// Collect fetches each target college's website and distills a short
// note from the page text. Fetches run concurrently; a college whose
// fetch or extraction fails simply contributes no note.
func Collect(ctx context.Context, targets []catalog.College, verbose bool) []Note {
	notes := make([]*Note, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range targets {
		g.Go(func() error {
			note, err := collectOne(gctx, c)
			if err != nil {
				if verbose {
					log.Printf("[RESEARCH] %s: %v", c.Name, err)
				}
				return nil
			}
			notes[i] = note
			if verbose {
				log.Printf("[RESEARCH] %s: note from %s (%d chars)", c.Name, note.URL, len(note.Note))
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Note, 0, len(targets))
	for _, n := range notes {
		if n != nil {
			out = append(out, *n)
		}
	}
	return out
}

func collectOne(ctx context.Context, c catalog.College) (*Note, error) {
	if c.Website == "" {
		return nil, &fetch.Error{URL: "", Message: "no website on record"}
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	result, err := fetch.URL(ctx, c.Website, nil)
	if err != nil {
		return nil, err
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.CollegePageSelectors())
	if err != nil {
		return nil, err
	}

	// Client-side rendered sites return near-empty HTML; retry with the
	// headless browser before giving up.
	if fetch.ShouldUseBrowser(text) {
		html, berr := fetch.WithBrowser(ctx, c.Website, fetchTimeout, false)
		if berr == nil {
			if rendered, rerr := fetch.ExtractMainText(html, fetch.CollegePageSelectors()); rerr == nil {
				text = rendered
			}
		}
	}

	summary := distill(text)
	if summary == "" {
		return nil, &fetch.Error{URL: c.Website, Message: "no relevant content"}
	}

	return &Note{Title: c.Name, URL: c.Website, Note: summary}, nil
}

// distill picks the most advisee-relevant sentences from page text,
// keeping them in original order.
func distill(text string) string {
	type scored struct {
		index    int
		score    int
		sentence string
	}

	var candidates []scored
	for i, s := range splitSentences(text) {
		if len(s) < minSentenceLen || len(s) > maxNoteLength {
			continue
		}
		score := keywordScore(s)
		if score > 0 {
			candidates = append(candidates, scored{index: i, score: score, sentence: s})
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxNoteSentences {
		candidates = candidates[:maxNoteSentences]
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].index < candidates[j].index
	})

	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, c.sentence)
	}

	summary := strings.Join(parts, " ")
	if len(summary) > maxNoteLength {
		summary = summary[:maxNoteLength]
	}
	return summary
}

func keywordScore(sentence string) int {
	lower := strings.ToLower(sentence)
	score := 0
	for _, kw := range noteKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}

// splitSentences is a rough splitter over periods and newlines; good
// enough for scoring, not for grammar.
func splitSentences(text string) []string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		for _, s := range strings.Split(line, ". ") {
			s = strings.TrimSpace(s)
			if s != "" {
				sentences = append(sentences, s)
			}
		}
	}
	return sentences
}
