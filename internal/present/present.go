// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present turns document records into display-ready values.
// Every function is pure: no I/O, no state. Views call into this package
// only when their load state is Loaded.
package present

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/araddon/dateparse"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// Fallback and informational texts shared by the views.
const (
	UntitledDocument = "Untitled Document"
	NoSummary        = "No summary available"
	NoCitation       = "No citation information available"
	NoDocuments      = "No documents found. Upload a document to get started."
)

// TimestampLayout renders "Jan 5, 2025, 03:45 PM". Month names come from
// the time package and do not depend on the process locale.
const TimestampLayout = "Jan 2, 2006, 03:04 PM"

// DefaultSummaryLimit is the number of characters kept by TruncateSummary.
const DefaultSummaryLimit = 150

// Ellipsis marks a truncated summary. It is a single character, so a
// truncated summary is exactly limit+1 characters long.
const Ellipsis = "…"

// FormatTimestamp renders ts in the process local zone. See
// FormatTimestampIn.
func FormatTimestamp(ts string) string {
	return FormatTimestampIn(ts, time.Local)
}

// FormatTimestampIn renders ts with TimestampLayout in loc. It returns ""
// when ts is empty or cannot be parsed. Timestamps without a zone are
// read as wall-clock time in loc; zoned timestamps are converted to loc.
func FormatTimestampIn(ts string, loc *time.Location) (out string) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	// dateparse can panic on some malformed inputs.
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	t, err := dateparse.ParseIn(ts, loc)
	if err != nil {
		return ""
	}
	return t.In(loc).Format(TimestampLayout)
}

// TruncateSummary shortens text to DefaultSummaryLimit characters.
func TruncateSummary(text string) string {
	return TruncateSummaryTo(text, DefaultSummaryLimit)
}

// TruncateSummaryTo returns NoSummary for an empty text, the text itself
// when it has at most limit characters, and otherwise its first limit
// characters followed by Ellipsis. Counting is per character, not per
// word. A non-positive limit means DefaultSummaryLimit.
func TruncateSummaryTo(text string, limit int) string {
	if text == "" {
		return NoSummary
	}
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + Ellipsis
}

// CitationRow is one labelled citation entry.
type CitationRow struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// EnumerateCitation lists the non-empty citation entries in key order.
// Keys are not assumed: whatever the backend sent is listed. The result
// is empty, never nil, when c is nil.
func EnumerateCitation(c *types.Citation) []CitationRow {
	rows := make([]CitationRow, 0, c.Len())
	for _, f := range c.Fields() {
		if f.Value == "" {
			continue
		}
		rows = append(rows, CitationRow{Label: Label(f.Key), Value: f.Value})
	}
	return rows
}

// Label upper-cases the first character of key ("doi" → "Doi").
func Label(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}

// RenderTags returns the tags unchanged, one label each. The result is
// empty, never nil, when tags is nil.
func RenderTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// DisplayTitle returns title or UntitledDocument.
func DisplayTitle(title string) string {
	if title == "" {
		return UntitledDocument
	}
	return title
}
