// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/doc-viewer/internal/httputil"
	"github.com/pdiddy/doc-viewer/internal/loadstate"
	"github.com/pdiddy/doc-viewer/pkg/types"
)

// ListFailedMessage is shown for every collection failure.
const ListFailedMessage = "Error loading documents. Please try again later."

// CollectionLoader fetches the full document collection for the listing
// view. It never retries on its own.
type CollectionLoader struct {
	source CollectionSource
	log    io.Writer
	t      tracker[[]types.DocumentSummary]
}

// NewCollectionLoader returns a loader in the Loading state. Failures are
// logged to log; a nil log discards them.
func NewCollectionLoader(source CollectionSource, log io.Writer) *CollectionLoader {
	return &CollectionLoader{source: source, log: logWriter(log)}
}

// State returns the current state.
func (l *CollectionLoader) State() loadstate.State[[]types.DocumentSummary] {
	return l.t.current()
}

// Start resets the state to Loading and supersedes any outstanding fetch.
func (l *CollectionLoader) Start() Request {
	return Request{Ticket: l.t.start(nil)}
}

// Fetch performs the network call for req. It does not touch the state
// and is safe to run on any goroutine.
func (l *CollectionLoader) Fetch(ctx context.Context, req Request) Completion[[]types.DocumentSummary] {
	docs, err := l.source.ListDocuments(ctx)
	if err != nil {
		fmt.Fprintf(l.log, "warning: list documents (%s): %v\n", httputil.Classify(err), err)
	}
	return Completion[[]types.DocumentSummary]{Request: req, Value: docs, Err: err}
}

// Apply installs c if its ticket is still current. Stale completions and
// completions arriving after Close are discarded; Apply reports whether c
// was applied.
func (l *CollectionLoader) Apply(c Completion[[]types.DocumentSummary]) bool {
	ev := loadstate.Succeed(c.Value)
	if c.Err != nil {
		ev = loadstate.Fail[[]types.DocumentSummary](ListFailedMessage)
	}
	return l.t.finish(c.Ticket, ev, nil)
}

// Load runs Start, Fetch and Apply and returns the resulting state. When
// a newer Start happened meanwhile, the newer state is returned.
func (l *CollectionLoader) Load(ctx context.Context) loadstate.State[[]types.DocumentSummary] {
	req := l.Start()
	l.Apply(l.Fetch(ctx, req))
	return l.State()
}

// Close detaches the loader from its view. Later completions are no-ops.
func (l *CollectionLoader) Close() { l.t.close() }

// Closed reports whether Close was called.
func (l *CollectionLoader) Closed() bool { return l.t.closed() }
