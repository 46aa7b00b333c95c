// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view renders the listing and detail views from their load
// state. Rendering is a pure function of the state: the same state gives
// the same text. A Failed state replaces the content area with an alert
// and leaves the navigation hints in place.
package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/doc-viewer/internal/loadstate"
	"github.com/pdiddy/doc-viewer/internal/present"
	"github.com/pdiddy/doc-viewer/pkg/types"
)

// Texts shown by the views.
const (
	ListTitle        = "Documents"
	LoadingDocuments = "Loading documents..."
	LoadingDocument  = "Loading document..."
	BackToDocuments  = "Back to Documents"
	AddedPrefix      = "Added: "
	SummaryHeading   = "Summary"
	CitationHeading  = "Citation"
)

// Key hints appended to each view. Pass ListHints(false) for output that
// is not interactive.
func ListHints(interactive bool) string {
	if !interactive {
		return ""
	}
	return HintStyle.Render("↑/↓ select • enter open • r reload • q quit")
}

// DetailHints returns the detail view's navigation line.
func DetailHints(interactive bool) string {
	if !interactive {
		return ""
	}
	return HintStyle.Render("← " + BackToDocuments + " (esc) • n/p next/prev • r reload • q quit")
}

// RenderList renders the listing view. selected is the highlighted card
// index, or -1 for none.
func RenderList(s loadstate.State[[]types.DocumentSummary], loc *time.Location, selected int) string {
	var parts []string
	parts = append(parts, TitleStyle.Render(ListTitle))

	switch s.Phase() {
	case loadstate.Loading:
		parts = append(parts, InfoStyle.Render(LoadingDocuments))
	case loadstate.Failed:
		msg, _ := s.Message()
		parts = append(parts, AlertStyle.Render(msg))
	case loadstate.Loaded:
		docs, _ := s.Value()
		if len(docs) == 0 {
			parts = append(parts, InfoStyle.Render(present.NoDocuments))
			break
		}
		for i, c := range present.Cards(docs, loc) {
			parts = append(parts, renderCard(c, i == selected))
		}
	}
	return strings.Join(parts, "\n")
}

func renderCard(c present.Card, selected bool) string {
	lines := []string{TitleStyle.Render(c.Title)}
	if c.Added != "" {
		lines = append(lines, InfoStyle.Render(AddedPrefix+c.Added))
	}
	lines = append(lines, c.Summary)
	if tags := renderChips(c.Tags); tags != "" {
		lines = append(lines, tags)
	}
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderDetail renders the detail view.
func RenderDetail(s loadstate.State[*types.DocumentDetail], loc *time.Location) string {
	switch s.Phase() {
	case loadstate.Failed:
		msg, _ := s.Message()
		return AlertStyle.Render(msg)
	case loadstate.Loaded:
		doc, _ := s.Value()
		return renderDetail(present.NewDetail(doc, loc))
	default:
		return InfoStyle.Render(LoadingDocument)
	}
}

func renderDetail(d present.Detail) string {
	parts := []string{TitleStyle.Render(d.Title)}
	if d.Added != "" {
		parts = append(parts, InfoStyle.Render(AddedPrefix+d.Added))
	}
	if tags := renderChips(d.Tags); tags != "" {
		parts = append(parts, tags)
	}

	parts = append(parts, HeadingStyle.Render(SummaryHeading), d.Summary)

	parts = append(parts, HeadingStyle.Render(CitationHeading))
	if !d.HasCitation {
		parts = append(parts, InfoStyle.Render(present.NoCitation))
	}
	for _, row := range d.Citation {
		parts = append(parts, LabelStyle.Render(row.Label+":")+" "+row.Value)
	}
	return strings.Join(parts, "\n")
}

// renderChips draws one chip per tag, duplicates included.
func renderChips(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	chips := make([]string, len(tags))
	for i, t := range tags {
		chips[i] = ChipStyle.Render(t)
	}
	return strings.Join(chips, " ")
}

// Page stacks body and hints, dropping empty hints.
func Page(body, hints string) string {
	if hints == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, hints)
}
