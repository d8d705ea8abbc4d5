package cycle

import "github.com/winstonung/cr-cycle-server-go/internal/card"

// Default container arities. The containers themselves do not enforce these
// after construction; operations grow and shrink the backing slice
// transiently and the cycle state restores the arity before returning.
const (
	DrawPileSize   = 4
	ActiveHandSize = 4
	DeckSize       = 8
)

// CardSlots is an ordered sequence of slots, each holding either a card or
// the explicit empty marker (nil). One instance each backs the draw pile,
// the active hand and the deck, exclusively owned by their CycleState.
// Not safe for concurrent use; the session layer serializes access.
type CardSlots struct {
	slots []*card.Card
}

// NewCardSlots creates a container with n empty slots.
func NewCardSlots(n int) *CardSlots {
	return &CardSlots{
		slots: make([]*card.Card, n),
	}
}

// Len returns the current number of slots, empty ones included.
func (s *CardSlots) Len() int { return len(s.slots) }

// At returns the card in slot i, or nil for an empty slot or an index
// outside the sequence.
func (s *CardSlots) At(i int) *card.Card {
	if i < 0 || i >= len(s.slots) {
		return nil
	}
	return s.slots[i]
}

// PushBack appends a slot holding c to the end, growing the sequence by one.
func (s *CardSlots) PushBack(c *card.Card) {
	s.slots = append(s.slots, c)
}

// PopFront removes and returns slot 0, shrinking the sequence by one. The
// returned card is nil when slot 0 was empty or the sequence had zero
// length; callers maintain the arity invariants that make the zero-length
// case unreachable in normal operation.
func (s *CardSlots) PopFront() *card.Card {
	if len(s.slots) == 0 {
		return nil
	}
	front := s.slots[0]
	s.slots = s.slots[1:]
	return front
}

// InsertAt inserts a new slot holding c at index i, shifting later slots
// right and growing the sequence by one. An index past the end appends.
func (s *CardSlots) InsertAt(i int, c *card.Card) {
	if i < 0 {
		i = 0
	}
	if i >= len(s.slots) {
		s.slots = append(s.slots, c)
		return
	}
	s.slots = append(s.slots, nil)
	copy(s.slots[i+1:], s.slots[i:])
	s.slots[i] = c
}

// Contains reports whether any slot matches the query. A nil query matches
// any empty slot; otherwise slots are compared by card identity.
func (s *CardSlots) Contains(c *card.Card) bool {
	for _, slot := range s.slots {
		if c == nil {
			if slot == nil {
				return true
			}
			continue
		}
		if slot != nil && slot.Equals(c) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first slot holding a card equal to c,
// or -1 when no slot matches.
func (s *CardSlots) IndexOf(c *card.Card) int {
	if c == nil {
		return -1
	}
	for i, slot := range s.slots {
		if slot != nil && slot.Equals(c) {
			return i
		}
	}
	return -1
}

// RemoveByIdentity removes the first slot holding a card equal to c,
// left-shifting later slots to close the gap, and returns the removed
// index, or -1 when no slot matches. After a successful remove the
// container is one slot short of its conventional arity; the caller pairs
// every remove with exactly one compensating insert.
func (s *CardSlots) RemoveByIdentity(c *card.Card) int {
	if c == nil {
		return -1
	}
	for i, slot := range s.slots {
		if slot != nil && slot.Equals(c) {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return i
		}
	}
	return -1
}

// ReplaceAt overwrites slot i in place; the sequence length is unchanged.
// Out-of-range indexes are ignored.
func (s *CardSlots) ReplaceAt(i int, c *card.Card) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	s.slots[i] = c
}

// FirstEmpty returns the index of the first empty slot, or -1 when every
// slot is occupied.
func (s *CardSlots) FirstEmpty() int {
	for i, slot := range s.slots {
		if slot == nil {
			return i
		}
	}
	return -1
}

// Snapshot returns a new container of identical length and slot contents.
// The copy is deep with respect to slot structure and shallow with respect
// to card identity: the cards themselves are shared, so evolution counters
// advance across every snapshot of the same lineage.
func (s *CardSlots) Snapshot() *CardSlots {
	cpy := make([]*card.Card, len(s.slots))
	copy(cpy, s.slots)
	return &CardSlots{slots: cpy}
}

// Cards returns a copy of the backing slice for read-only iteration by the
// display layer.
func (s *CardSlots) Cards() []*card.Card {
	cpy := make([]*card.Card, len(s.slots))
	copy(cpy, s.slots)
	return cpy
}
