// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"github.com/pdiddy/doc-viewer/internal/view"
)

// View implements tea.Model.
func (m Model) View() string {
	switch {
	case m.screen == ScreenDetail && m.detail != nil:
		return view.Page(view.RenderDetail(m.detail.State(), m.loc), view.DetailHints(true)) + "\n"
	case m.list != nil:
		selected := m.selected
		if len(m.listDocs()) == 0 {
			selected = -1
		}
		return view.Page(view.RenderList(m.list.State(), m.loc, selected), view.ListHints(true)) + "\n"
	}
	return ""
}
