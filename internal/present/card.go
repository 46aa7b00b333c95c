// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"time"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// Card is the listing view's display model of one document.
type Card struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Added   string   `json:"added" yaml:"added"`
	Summary string   `json:"summary" yaml:"summary"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// NewCard derives a Card. The summary is truncated.
func NewCard(d types.DocumentSummary, loc *time.Location) Card {
	return Card{
		ID:      d.ID,
		Title:   DisplayTitle(d.Title),
		Added:   FormatTimestampIn(d.CreatedAt, loc),
		Summary: TruncateSummary(d.Summary),
		Tags:    RenderTags(d.Tags),
	}
}

// Cards derives one Card per document, keeping backend order.
func Cards(docs []types.DocumentSummary, loc *time.Location) []Card {
	cards := make([]Card, len(docs))
	for i, d := range docs {
		cards[i] = NewCard(d, loc)
	}
	return cards
}

// Detail is the detail view's display model of one document.
type Detail struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Added   string   `json:"added" yaml:"added"`
	Summary string   `json:"summary" yaml:"summary"`
	Tags    []string `json:"tags" yaml:"tags"`

	// HasCitation is false when the backend sent no citation at all, in
	// which case views show NoCitation.
	HasCitation bool          `json:"has_citation" yaml:"has_citation"`
	Citation    []CitationRow `json:"citation" yaml:"citation"`
}

// NewDetail derives a Detail. The summary is shown in full.
func NewDetail(d *types.DocumentDetail, loc *time.Location) Detail {
	if d == nil {
		return Detail{Title: UntitledDocument, Summary: NoSummary, Tags: []string{}, Citation: []CitationRow{}}
	}
	summary := d.Summary
	if summary == "" {
		summary = NoSummary
	}
	return Detail{
		ID:          d.ID,
		Title:       DisplayTitle(d.Title),
		Added:       FormatTimestampIn(d.CreatedAt, loc),
		Summary:     summary,
		Tags:        RenderTags(d.Tags),
		HasCitation: d.Citation != nil,
		Citation:    EnumerateCitation(d.Citation),
	}
}
