package cycle

import "github.com/winstonung/cr-cycle-server-go/internal/card"

// CycleState aggregates the three card containers and derives every
// player-visible transition. A card name appears in at most one of
// {draw pile, active hand, deck} at any time. All mutating operations are
// total: they either apply fully and return true, or leave the state
// untouched and return false. Precondition violations never panic.
type CycleState struct {
	drawPile   *CardSlots
	activeHand *CardSlots
	deck       *CardSlots

	champion    *card.Card
	cardsPlayed int
}

// NewCycleState creates a state with all containers empty at their
// conventional arities.
func NewCycleState() *CycleState {
	return &CycleState{
		drawPile:   NewCardSlots(DrawPileSize),
		activeHand: NewCardSlots(ActiveHandSize),
		deck:       NewCardSlots(DeckSize),
	}
}

// DrawPile returns the draw pile container.
func (s *CycleState) DrawPile() *CardSlots { return s.drawPile }

// ActiveHand returns the active hand container.
func (s *CycleState) ActiveHand() *CardSlots { return s.activeHand }

// Deck returns the deck container.
func (s *CycleState) Deck() *CardSlots { return s.deck }

// Champion returns the champion currently tracked in the deck, or nil.
func (s *CycleState) Champion() *card.Card { return s.champion }

// CardsPlayed returns the number of successful plays since the last reset.
func (s *CycleState) CardsPlayed() int { return s.cardsPlayed }

// PlayFromHand plays a card out of the active hand: the card leaves its
// hand slot, the front of the draw pile (possibly empty) takes its place,
// and the played card goes to the back of the draw pile. Evolution cards
// advance their cycle before leaving the hand. Returns false without
// mutation when the card is nil or not in the hand.
func (s *CycleState) PlayFromHand(c *card.Card) bool {
	i := s.activeHand.IndexOf(c)
	if i == -1 {
		return false
	}

	// Operate on the stored instance: callers may pass a lookalike built
	// from the catalog, but the cycle counter lives on the card in the hand.
	played := s.activeHand.At(i)
	played.IncreaseCycle()

	s.activeHand.RemoveByIdentity(played)
	next := s.drawPile.PopFront()
	s.activeHand.InsertAt(i, next)
	s.drawPile.PushBack(played)

	s.cardsPlayed++
	return true
}

// PlayFromDrawPile cycles a card within the draw pile: it is removed by
// identity and pushed to the back, compacting the remaining cards toward
// the front. The active hand and deck are untouched. Evolution cards
// advance their cycle first. Returns false without mutation when the card
// is nil or not in the draw pile.
func (s *CycleState) PlayFromDrawPile(c *card.Card) bool {
	i := s.drawPile.IndexOf(c)
	if i == -1 {
		return false
	}

	played := s.drawPile.At(i)
	played.IncreaseCycle()

	s.drawPile.RemoveByIdentity(played)
	s.drawPile.PushBack(played)

	s.cardsPlayed++
	return true
}

// AddCard places a card into the first empty slot of the active hand. The
// draw pile's emptiness only counts toward the "is there room anywhere"
// guard; the card is always written into the hand. Champions are tracked
// as the champion-in-deck. Returns false without mutation when the card is
// nil, already present in any container, or no empty slot exists in hand
// or draw pile.
func (s *CycleState) AddCard(c *card.Card) bool {
	if c == nil {
		return false
	}
	if s.contains(c) {
		return false
	}
	if !s.activeHand.Contains(nil) && !s.drawPile.Contains(nil) {
		return false
	}

	i := s.activeHand.FirstEmpty()
	if i == -1 {
		// Room exists only in the draw pile; the hand stays the write
		// target, so the add cannot proceed.
		return false
	}
	s.activeHand.ReplaceAt(i, c)

	if c.IsChampion() {
		s.champion = c
	}
	return true
}

// AddCardToDeck places a card into the first empty slot of the deck
// container, with the same nil and duplicate guards as AddCard. Used to
// pre-build the full 8-card roster before tracking begins.
func (s *CycleState) AddCardToDeck(c *card.Card) bool {
	if c == nil || s.contains(c) {
		return false
	}
	i := s.deck.FirstEmpty()
	if i == -1 {
		return false
	}
	s.deck.ReplaceAt(i, c)

	if c.IsChampion() {
		s.champion = c
	}
	return true
}

// Reset reinitializes all containers empty at their conventional arities,
// clears the champion and zeroes the play counter.
func (s *CycleState) Reset() {
	s.drawPile = NewCardSlots(DrawPileSize)
	s.activeHand = NewCardSlots(ActiveHandSize)
	s.deck = NewCardSlots(DeckSize)
	s.champion = nil
	s.cardsPlayed = 0
}

// Restore copies a snapshot's containers and counters back into the state.
// The snapshot's containers are copied, not aliased, so later plays cannot
// mutate history entries.
func (s *CycleState) Restore(snap *Snapshot) {
	s.drawPile = snap.DrawPile.Snapshot()
	s.activeHand = snap.ActiveHand.Snapshot()
	s.deck = snap.Deck.Snapshot()
	s.champion = snap.Champion
	s.cardsPlayed = snap.CardsPlayed
}

func (s *CycleState) contains(c *card.Card) bool {
	return s.drawPile.Contains(c) || s.activeHand.Contains(c) || s.deck.Contains(c)
}
