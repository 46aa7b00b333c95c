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

// RecordFailedMessage is shown for every detail failure. A 404 and a
// network error show the same text.
const RecordFailedMessage = "Error loading document. It may not exist or has been deleted."

// RecordLoader fetches a single document for the detail view. Results are
// keyed on the requested id: only the completion for the most recent id
// and ticket is applied.
type RecordLoader struct {
	source  RecordSource
	log     io.Writer
	t       tracker[*types.DocumentDetail]
	id      string
	started bool
}

// NewRecordLoader returns a loader in the Loading state. Failures are
// logged to log; a nil log discards them.
func NewRecordLoader(source RecordSource, log io.Writer) *RecordLoader {
	return &RecordLoader{source: source, log: logWriter(log)}
}

// State returns the current state.
func (l *RecordLoader) State() loadstate.State[*types.DocumentDetail] {
	return l.t.current()
}

// ID returns the id of the most recent Start.
func (l *RecordLoader) ID() string {
	l.t.mu.Lock()
	defer l.t.mu.Unlock()
	return l.id
}

// NeedsLoad reports whether the view must fetch id: nothing was started
// yet, or the view now shows a different id.
func (l *RecordLoader) NeedsLoad(id string) bool {
	l.t.mu.Lock()
	defer l.t.mu.Unlock()
	return !l.started || l.id != id
}

// Start resets the state to Loading for id and supersedes any outstanding
// fetch. The id is not validated.
func (l *RecordLoader) Start(id string) Request {
	ticket := l.t.start(func() {
		l.id = id
		l.started = true
	})
	return Request{Ticket: ticket, ID: id}
}

// Fetch performs the network call for req. It does not touch the state
// and is safe to run on any goroutine.
func (l *RecordLoader) Fetch(ctx context.Context, req Request) Completion[*types.DocumentDetail] {
	doc, err := l.source.GetDocument(ctx, req.ID)
	if err != nil {
		fmt.Fprintf(l.log, "warning: get document %q (%s): %v\n", req.ID, httputil.Classify(err), err)
	}
	return Completion[*types.DocumentDetail]{Request: req, Value: doc, Err: err}
}

// Apply installs c if its ticket is current and it was fetched for the
// id the view currently shows. It reports whether c was applied.
func (l *RecordLoader) Apply(c Completion[*types.DocumentDetail]) bool {
	ev := loadstate.Succeed(c.Value)
	if c.Err != nil {
		ev = loadstate.Fail[*types.DocumentDetail](RecordFailedMessage)
	}
	return l.t.finish(c.Ticket, ev, func() bool { return c.ID == l.id })
}

// Load runs Start, Fetch and Apply for id and returns the resulting state.
func (l *RecordLoader) Load(ctx context.Context, id string) loadstate.State[*types.DocumentDetail] {
	req := l.Start(id)
	l.Apply(l.Fetch(ctx, req))
	return l.State()
}

// Close detaches the loader from its view. Later completions are no-ops.
func (l *RecordLoader) Close() { l.t.close() }

// Closed reports whether Close was called.
func (l *RecordLoader) Closed() bool { return l.t.closed() }
