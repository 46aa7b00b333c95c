// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ListFetchedMsg:
		// A closed loader discards the completion.
		msg.Loader.Apply(msg.Completion)
		m.clampSelection()
		return m, nil
	case DetailFetchedMsg:
		msg.Loader.Apply(msg.Completion)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.unmount()
		return m, tea.Quit
	}
	if m.screen == ScreenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	docs := m.listDocs()
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(docs)-1 {
			m.selected++
		}
	case "enter":
		if m.selected >= 0 && m.selected < len(docs) {
			m.ids = docIDs(docs)
			return m.openDetail(docs[m.selected].ID)
		}
	case "r":
		if m.list != nil {
			return m, fetchList(m.ctx, m.list, m.list.Start())
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "b", "left":
		return m.openList()
	case "r":
		if m.detail != nil {
			return m, fetchDetail(m.ctx, m.detail, m.detail.Start(m.detail.ID()))
		}
	case "n":
		return m.step(1)
	case "p":
		return m.step(-1)
	}
	return m, nil
}

// step moves the detail view to the neighbouring document of the last
// loaded list.
func (m Model) step(delta int) (Model, tea.Cmd) {
	if m.detail == nil || len(m.ids) == 0 {
		return m, nil
	}
	i := indexOf(m.ids, m.detail.ID())
	if i < 0 {
		return m, nil
	}
	next := i + delta
	if next < 0 || next >= len(m.ids) {
		return m, nil
	}
	m.selected = next
	return m.showID(m.ids[next])
}

// unmount closes whichever loader is mounted.
func (m Model) unmount() {
	if m.list != nil {
		m.list.Close()
	}
	if m.detail != nil {
		m.detail.Close()
	}
}

func (m *Model) clampSelection() {
	n := len(m.listDocs())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func docIDs(docs []types.DocumentSummary) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
