// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loadstate models the lifecycle of a view-bound fetch: a tagged
// variant over Loading, Loaded(value) and Failed(message), pure
// transitions between them, and a generation guard against stale
// completions.
package loadstate

// Phase identifies which variant a State holds.
type Phase int

const (
	// Loading is the zero Phase, so the zero State is Loading.
	Loading Phase = iota
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the three-way lifecycle of one asynchronous fetch. States are
// values: a transition returns a new State and never mutates the old one.
type State[T any] struct {
	phase   Phase
	value   T
	message string
}

// NewLoading returns a Loading state.
func NewLoading[T any]() State[T] {
	return State[T]{phase: Loading}
}

// NewLoaded returns a Loaded state holding v.
func NewLoaded[T any](v T) State[T] {
	return State[T]{phase: Loaded, value: v}
}

// NewFailed returns a Failed state carrying a user-facing message.
func NewFailed[T any](message string) State[T] {
	return State[T]{phase: Failed, message: message}
}

// Phase returns the current variant.
func (s State[T]) Phase() Phase { return s.phase }

// Value returns the loaded value. ok is false unless the state is Loaded.
func (s State[T]) Value() (v T, ok bool) {
	if s.phase != Loaded {
		return v, false
	}
	return s.value, true
}

// Message returns the failure message. ok is false unless the state is
// Failed.
func (s State[T]) Message() (string, bool) {
	if s.phase != Failed {
		return "", false
	}
	return s.message, true
}

// EventKind identifies a lifecycle event.
type EventKind int

const (
	// Started marks the start of a fetch attempt.
	Started EventKind = iota
	// Succeeded carries the fetched value.
	Succeeded
	// Errored carries the user-facing failure message.
	Errored
)

// Event is an input to Reduce.
type Event[T any] struct {
	Kind    EventKind
	Value   T
	Message string
}

// Start returns a Started event.
func Start[T any]() Event[T] { return Event[T]{Kind: Started} }

// Succeed returns a Succeeded event carrying v.
func Succeed[T any](v T) Event[T] { return Event[T]{Kind: Succeeded, Value: v} }

// Fail returns an Errored event carrying message.
func Fail[T any](message string) Event[T] { return Event[T]{Kind: Errored, Message: message} }

// Reduce computes the next state. Started always resets to Loading.
// Succeeded and Errored apply only to a Loading state: Loaded and Failed
// are terminal until the next Started.
func Reduce[T any](cur State[T], ev Event[T]) State[T] {
	switch ev.Kind {
	case Started:
		return NewLoading[T]()
	case Succeeded:
		if cur.phase != Loading {
			return cur
		}
		return NewLoaded(ev.Value)
	case Errored:
		if cur.phase != Loading {
			return cur
		}
		return NewFailed[T](ev.Message)
	}
	return cur
}
