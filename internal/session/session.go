// Package session hosts card-cycle tracking sessions. A session pairs one
// CycleState with its undo history behind a mutex, so each session is an
// explicit object rather than process-wide state and many sessions can run
// side by side.
package session

import (
	"sync"
	"time"

	"github.com/winstonung/cr-cycle-server-go/internal/card"
	"github.com/winstonung/cr-cycle-server-go/internal/catalog"
	"github.com/winstonung/cr-cycle-server-go/internal/cycle"
)

// Session is one player's tracking session. Every mutating command either
// applies fully, records exactly one history entry and returns true, or
// leaves state and history untouched and returns false. Commands serialize
// on the session mutex.
type Session struct {
	ID string

	mu      sync.Mutex
	state   *cycle.CycleState
	history *cycle.History
	catalog *catalog.Catalog

	createdAt  time.Time
	lastActive time.Time
}

func newSession(id string, cat *catalog.Catalog) *Session {
	s := &Session{
		ID:         id,
		state:      cycle.NewCycleState(),
		history:    cycle.NewHistory(),
		catalog:    cat,
		createdAt:  time.Now(),
		lastActive: time.Now(),
	}
	// Seed the history with the initial empty state so the first undo has
	// a floor to stop at.
	s.history.Record(s.state)
	return s
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

// LastActive returns the time of the most recent command.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// PlayHandSlot plays the card in active hand slot i. An empty or
// out-of-range slot fails without mutation.
func (s *Session) PlayHandSlot(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	c := s.state.ActiveHand().At(i)
	if c == nil {
		return false
	}
	if !s.state.PlayFromHand(c) {
		return false
	}
	s.history.Record(s.state)
	return true
}

// PlayDrawPileSlot plays the card in draw pile slot i, cycling it to the
// back of the pile.
func (s *Session) PlayDrawPileSlot(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	c := s.state.DrawPile().At(i)
	if c == nil {
		return false
	}
	if !s.state.PlayFromDrawPile(c) {
		return false
	}
	s.history.Record(s.state)
	return true
}

// AddCard places a card into the hand's first empty slot.
func (s *Session) AddCard(c *card.Card) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.state.AddCard(c) {
		return false
	}
	s.history.Record(s.state)
	return true
}

// AddByName looks the name up in the catalog and adds the card. An unknown
// name, or a catalog that has not loaded yet, yields nothing to add and
// fails like any other precondition.
func (s *Session) AddByName(name string) bool {
	entry, ok := s.catalog.Get(name)
	if !ok {
		return false
	}
	return s.AddCard(entry.Card())
}

// AddToDeck places a card into the deck container's first empty slot.
func (s *Session) AddToDeck(c *card.Card) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.state.AddCardToDeck(c) {
		return false
	}
	s.history.Record(s.state)
	return true
}

// AddToDeckByName looks the name up in the catalog and adds it to the deck.
func (s *Session) AddToDeckByName(name string) bool {
	entry, ok := s.catalog.Get(name)
	if !ok {
		return false
	}
	return s.AddToDeck(entry.Card())
}

// Undo reverts the most recent successful mutation. Fails once only the
// seed snapshot remains, no matter how often it is repeated.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.state.Restore(snap)
	return true
}

// Reset reinitializes the session in place: empty containers, cleared
// champion, zeroed play counter, history reseeded with the fresh state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.state.Reset()
	s.history.Clear()
	s.history.Record(s.state)
}

// View returns a read-only copy of the player-visible state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := buildView(s.ID, s.state)
	v.CanUndo = s.history.Len() > 1
	return v
}

// HistoryLen returns the number of history entries, the seed included.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}
