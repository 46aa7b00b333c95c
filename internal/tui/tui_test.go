// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doc-viewer/internal/httputil"
	"github.com/pdiddy/doc-viewer/internal/loader"
	"github.com/pdiddy/doc-viewer/internal/loadstate"
	"github.com/pdiddy/doc-viewer/internal/present"
	"github.com/pdiddy/doc-viewer/pkg/types"
)

type fakeSource struct {
	docs    []types.DocumentSummary
	listErr error
	calls   []string
}

func (f *fakeSource) ListDocuments(context.Context) ([]types.DocumentSummary, error) {
	f.calls = append(f.calls, "list")
	return f.docs, f.listErr
}

func (f *fakeSource) GetDocument(_ context.Context, id string) (*types.DocumentDetail, error) {
	f.calls = append(f.calls, "get "+id)
	for _, d := range f.docs {
		if d.ID == id {
			return &types.DocumentDetail{DocumentSummary: d}, nil
		}
	}
	return nil, &httputil.StatusError{StatusCode: 404}
}

func sampleSource() *fakeSource {
	return &fakeSource{docs: []types.DocumentSummary{
		{ID: "123", Title: "Advanced NLP Techniques", Tags: []string{"#nlp"}},
		{ID: "456", Title: "Reinforcement Learning"},
	}}
}

func newModel(src Source, startID string) Model {
	return NewModel(context.Background(), Config{Source: src, Location: time.UTC, StartID: startID})
}

// run executes cmd and feeds its message back into m.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(key)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitLoadsList(t *testing.T) {
	m := newModel(sampleSource(), "")
	assert.Equal(t, ScreenList, m.Screen())
	assert.Contains(t, m.View(), "Loading documents")

	m = run(t, m, m.Init())
	out := m.View()
	assert.Contains(t, out, "Advanced NLP Techniques")
	assert.Contains(t, out, "Reinforcement Learning")
}

func TestEmptyListIsInformational(t *testing.T) {
	m := newModel(&fakeSource{docs: []types.DocumentSummary{}}, "")
	m = run(t, m, m.Init())
	assert.Contains(t, m.View(), present.NoDocuments)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, ScreenList, m.Screen())
}

func TestListFailure(t *testing.T) {
	m := newModel(&fakeSource{listErr: httputil.ErrNetwork}, "")
	m = run(t, m, m.Init())
	out := m.View()
	assert.Contains(t, out, loader.ListFailedMessage)
	assert.Contains(t, out, "r reload")
}

func TestOpenDetailAndBack(t *testing.T) {
	src := sampleSource()
	m := newModel(src, "")
	m = run(t, m, m.Init())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ScreenDetail, m.Screen())
	assert.Contains(t, m.View(), "Loading document")
	m = run(t, m, cmd)
	assert.Contains(t, m.View(), "Reinforcement Learning")
	assert.Contains(t, m.View(), "Back to Documents")

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenList, m.Screen())
	m = run(t, m, cmd)
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, []string{"list", "get 456", "list"}, src.calls)
}

func TestDetailNotFound(t *testing.T) {
	m := newModel(sampleSource(), "999")
	assert.Equal(t, ScreenDetail, m.Screen())
	m = run(t, m, m.Init())
	assert.Contains(t, m.View(), loader.RecordFailedMessage)
	assert.Contains(t, m.View(), "Back to Documents")
}

func TestCompletionAfterUnmountIsDiscarded(t *testing.T) {
	m := newModel(sampleSource(), "")
	m = run(t, m, m.Init())

	m, openCmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	stale := openCmd().(DetailFetchedMsg)

	// Leave the detail view before its fetch lands.
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	next, _ := m.Update(stale)
	m = next.(Model)

	assert.True(t, stale.Loader.Closed())
	assert.Equal(t, loadstate.Loading, stale.Loader.State().Phase())
	assert.Equal(t, ScreenList, m.Screen())
}

func TestNextPrevUsesListOrder(t *testing.T) {
	src := sampleSource()
	m := newModel(src, "")
	m = run(t, m, m.Init())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)
	assert.Contains(t, m.View(), "Advanced NLP Techniques")

	m, cmd = press(m, runes("n"))
	m = run(t, m, cmd)
	assert.Contains(t, m.View(), "Reinforcement Learning")

	m, cmd = press(m, runes("n"))
	assert.Nil(t, cmd, "no document past the end")

	m, cmd = press(m, runes("p"))
	m = run(t, m, cmd)
	assert.Contains(t, m.View(), "Advanced NLP Techniques")
	assert.Equal(t, []string{"list", "get 123", "get 456", "get 123"}, src.calls)
}

func TestReloadSupersedesOutstandingFetch(t *testing.T) {
	m := newModel(sampleSource(), "123")
	first := m.Init()

	m, reload := press(m, runes("r"))
	newer := reload()
	older := first()

	next, _ := m.Update(newer)
	m = next.(Model)
	next, _ = m.Update(older)
	m = next.(Model)

	assert.Contains(t, m.View(), "Advanced NLP Techniques")
	assert.False(t, older.(DetailFetchedMsg).Loader.Apply(older.(DetailFetchedMsg).Completion))
}

func TestQuitClosesLoader(t *testing.T) {
	m := newModel(sampleSource(), "")
	pending := m.Init()

	_, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	msg := pending().(ListFetchedMsg)
	assert.True(t, msg.Loader.Closed())
	assert.False(t, msg.Loader.Apply(msg.Completion))
}

func TestUnknownMessageIsIgnored(t *testing.T) {
	m := newModel(sampleSource(), "")
	next, cmd := m.Update(errors.New("noise"))
	assert.Nil(t, cmd)
	assert.Equal(t, ScreenList, next.(Model).Screen())
}
