// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary   = "#7D56F4"
	colorError     = "#FF5F87"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#874BFD"
	colorChip      = "#3C3C5A"
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary))

	HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		MarginTop(1)

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	// AlertStyle frames a Failed state in place of the content area.
	AlertStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorError)).
		Foreground(lipgloss.Color(colorError)).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(colorPrimary)).
		BorderStyle(lipgloss.ThickBorder())

	ChipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorChip)).
		Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().Bold(true)

	HintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo)).
		MarginTop(1)
)
