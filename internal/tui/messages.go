// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/doc-viewer/internal/loader"
	"github.com/pdiddy/doc-viewer/pkg/types"
)

// ListFetchedMsg carries a collection completion back to the loader that
// issued it.
type ListFetchedMsg struct {
	Loader     *loader.CollectionLoader
	Completion loader.Completion[[]types.DocumentSummary]
}

// DetailFetchedMsg carries a record completion back to the loader that
// issued it.
type DetailFetchedMsg struct {
	Loader     *loader.RecordLoader
	Completion loader.Completion[*types.DocumentDetail]
}

// fetchList runs the collection fetch off the UI goroutine.
func fetchList(ctx context.Context, l *loader.CollectionLoader, req loader.Request) tea.Cmd {
	return func() tea.Msg {
		return ListFetchedMsg{Loader: l, Completion: l.Fetch(ctx, req)}
	}
}

// fetchDetail runs the record fetch off the UI goroutine.
func fetchDetail(ctx context.Context, l *loader.RecordLoader, req loader.Request) tea.Cmd {
	return func() tea.Msg {
		return DetailFetchedMsg{Loader: l, Completion: l.Fetch(ctx, req)}
	}
}
