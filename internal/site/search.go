package site

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/livebook/internal/book"
	"github.com/ziadkadry99/livebook/internal/markup"
)

// maxIndexedContent caps the body text stored per search entry.
const maxIndexedContent = 2000

// SearchEntry represents a single searchable chapter of the book.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex returns one entry per chapter, in chapter order.
func BuildSearchIndex(store *book.Store) []SearchEntry {
	chapters := store.Chapters()
	entries := make([]SearchEntry, 0, len(chapters))
	for _, c := range chapters {
		content := markup.PlainText(c.Content)
		if len(content) > maxIndexedContent {
			content = truncate(content, maxIndexedContent)
		}
		entries = append(entries, SearchEntry{
			Path:    c.Path,
			Title:   c.Title,
			Summary: c.Description,
			Content: content,
		})
	}
	return entries
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Search scores entries against the whitespace-separated terms of query.
// Each term found in the title adds 3, in the summary 2, in the content 1,
// all case-insensitively. Entries scoring zero are dropped; ties keep index
// order. A non-positive limit returns every match.
func Search(index []SearchEntry, query string, limit int) []SearchEntry {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		entry SearchEntry
		score int
	}
	var matches []scored
	for _, e := range index {
		title := strings.ToLower(e.Title)
		summary := strings.ToLower(e.Summary)
		content := strings.ToLower(e.Content)

		score := 0
		for _, t := range terms {
			if strings.Contains(title, t) {
				score += 3
			}
			if strings.Contains(summary, t) {
				score += 2
			}
			if strings.Contains(content, t) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]SearchEntry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
