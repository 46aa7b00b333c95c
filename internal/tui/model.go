// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive document browser. It mounts one view at
// a time: the listing view or the detail view. Each mount creates a
// fresh loader and each unmount closes it, so a completion arriving for a
// view that is no longer shown is discarded.
package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/doc-viewer/internal/loader"
	"github.com/pdiddy/doc-viewer/pkg/types"
)

// Source is the backend the browser reads from.
type Source interface {
	loader.CollectionSource
	loader.RecordSource
}

// Screen identifies the mounted view.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// Config holds what the browser needs at startup.
type Config struct {
	Source   Source
	Location *time.Location

	// Log receives loader warnings. Nil discards them.
	Log io.Writer

	// StartID opens the detail view of this document instead of the list.
	StartID string
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx    context.Context
	source Source
	loc    *time.Location
	log    io.Writer

	screen   Screen
	list     *loader.CollectionLoader
	detail   *loader.RecordLoader
	selected int

	// ids is the order of the last loaded list, used by next/prev in the
	// detail view.
	ids []string

	// initCmd is the first fetch, issued by Init.
	initCmd tea.Cmd
}

// NewModel returns a browser reading from cfg.Source with its first view
// mounted. ctx bounds every fetch.
func NewModel(ctx context.Context, cfg Config) Model {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	m := Model{
		ctx:    ctx,
		source: cfg.Source,
		loc:    loc,
		log:    cfg.Log,
	}
	var cmd tea.Cmd
	if cfg.StartID != "" {
		m, cmd = m.openDetail(cfg.StartID)
	} else {
		m, cmd = m.openList()
	}
	m.initCmd = cmd
	return m
}

// Init implements tea.Model by issuing the first fetch.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Screen returns the mounted view.
func (m Model) Screen() Screen { return m.screen }

// Selected returns the highlighted card index in the listing view.
func (m Model) Selected() int { return m.selected }

// openList unmounts the detail view and mounts a fresh listing view.
func (m Model) openList() (Model, tea.Cmd) {
	if m.detail != nil {
		m.detail.Close()
		m.detail = nil
	}
	m.screen = ScreenList
	m.list = loader.NewCollectionLoader(m.source, m.log)
	return m, fetchList(m.ctx, m.list, m.list.Start())
}

// openDetail unmounts the listing view and mounts a detail view for id.
func (m Model) openDetail(id string) (Model, tea.Cmd) {
	if m.list != nil {
		m.list.Close()
		m.list = nil
	}
	m.screen = ScreenDetail
	m.detail = loader.NewRecordLoader(m.source, m.log)
	return m, fetchDetail(m.ctx, m.detail, m.detail.Start(id))
}

// showID points the mounted detail view at id, fetching only when the id
// changed.
func (m Model) showID(id string) (Model, tea.Cmd) {
	if m.detail == nil || !m.detail.NeedsLoad(id) {
		return m, nil
	}
	return m, fetchDetail(m.ctx, m.detail, m.detail.Start(id))
}

// listDocs returns the loaded documents, if any.
func (m Model) listDocs() []types.DocumentSummary {
	if m.list == nil {
		return nil
	}
	docs, _ := m.list.State().Value()
	return docs
}
