package cycle

import "github.com/winstonung/cr-cycle-server-go/internal/card"

// Snapshot captures the full cycle state at one point in time: container
// copies, the champion reference and the play counter. Container copies
// are structural; the cards themselves are shared with the live state.
type Snapshot struct {
	DrawPile    *CardSlots
	ActiveHand  *CardSlots
	Deck        *CardSlots
	Champion    *card.Card
	CardsPlayed int
}

// History is an append-only log of snapshots enabling single-step undo.
// The first entry is the seed (the initial empty state); undo never
// removes it, so the log always holds at least one entry once seeded.
// Growth is unbounded, an accepted tradeoff for one interactive session.
type History struct {
	entries []*Snapshot
}

// NewHistory creates an empty, unseeded log.
func NewHistory() *History {
	return &History{
		entries: make([]*Snapshot, 0, 16),
	}
}

// Record appends a snapshot of the state's current containers and
// counters. Always succeeds. Callers invoke it exactly once per
// successful mutation and never after a failed one.
func (h *History) Record(s *CycleState) {
	h.entries = append(h.entries, &Snapshot{
		DrawPile:    s.DrawPile().Snapshot(),
		ActiveHand:  s.ActiveHand().Snapshot(),
		Deck:        s.Deck().Snapshot(),
		Champion:    s.Champion(),
		CardsPlayed: s.CardsPlayed(),
	})
}

// Undo removes the most recent entry and returns the new top for the
// caller to copy back onto the cycle state. Returns (nil, false) and
// leaves the log unchanged when only the seed entry remains or the log
// was never seeded.
func (h *History) Undo() (*Snapshot, bool) {
	if len(h.entries) <= 1 {
		return nil, false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of recorded snapshots, the seed included.
func (h *History) Len() int { return len(h.entries) }

// Clear drops every entry, seed included. The caller reseeds before undo
// becomes meaningful again.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
