// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader drives the fetch lifecycle of the two document views.
// A CollectionLoader backs the listing view and a RecordLoader backs the
// detail view. Each loader owns one loadstate.State exclusively.
//
// A fetch has three steps so that a UI can run the network call off its
// own thread: Start resets the state to Loading and issues a ticket,
// Fetch performs the call without touching the state, and Apply installs
// the result if the ticket is still current. Load runs all three.
package loader

import (
	"context"
	"io"
	"sync"

	"github.com/pdiddy/doc-viewer/internal/loadstate"
	"github.com/pdiddy/doc-viewer/pkg/types"
)

// CollectionSource lists the document collection.
type CollectionSource interface {
	ListDocuments(ctx context.Context) ([]types.DocumentSummary, error)
}

// RecordSource fetches a single document.
type RecordSource interface {
	GetDocument(ctx context.Context, id string) (*types.DocumentDetail, error)
}

// Request identifies one issued fetch. ID is empty for collection fetches.
type Request struct {
	Ticket loadstate.Ticket
	ID     string
}

// Completion is the outcome of Fetch, waiting to be applied.
type Completion[T any] struct {
	Request
	Value T
	Err   error
}

// tracker owns a state and its guard behind a mutex.
type tracker[T any] struct {
	mu    sync.Mutex
	state loadstate.State[T]
	guard loadstate.Guard
}

func (t *tracker[T]) current() loadstate.State[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// start issues a ticket and resets the state to Loading. prepare runs
// under the lock.
func (t *tracker[T]) start(prepare func()) loadstate.Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prepare != nil {
		prepare()
	}
	ticket := t.guard.Next()
	t.state = loadstate.Reduce(t.state, loadstate.Start[T]())
	return ticket
}

// finish applies ev if ticket is current and accept (run under the lock)
// agrees. It reports whether the state changed hands.
func (t *tracker[T]) finish(ticket loadstate.Ticket, ev loadstate.Event[T], accept func() bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.guard.Current(ticket) {
		return false
	}
	if accept != nil && !accept() {
		return false
	}
	t.state = loadstate.Reduce(t.state, ev)
	return true
}

func (t *tracker[T]) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.guard.Close()
}

func (t *tracker[T]) closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.guard.Closed()
}

func logWriter(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
