// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loadstate

// Ticket identifies one fetch attempt. Tickets increase monotonically per
// Guard.
type Ticket uint64

// Guard hands out tickets and decides whether a completion is still
// current. Only the most recently issued ticket is current, and nothing
// is current once the guard is closed. A Guard is not safe for concurrent
// use; its owner serializes access.
type Guard struct {
	latest uint64
	closed bool
}

// Next issues a new ticket, superseding all earlier ones.
func (g *Guard) Next() Ticket {
	g.latest++
	return Ticket(g.latest)
}

// Current reports whether t is the latest ticket and the guard is open.
func (g *Guard) Current(t Ticket) bool {
	return !g.closed && t != 0 && uint64(t) == g.latest
}

// Close marks the owning view as gone. Every later Current call is false.
func (g *Guard) Close() { g.closed = true }

// Closed reports whether Close was called.
func (g *Guard) Closed() bool { return g.closed }
