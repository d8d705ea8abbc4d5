package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winstonung/cr-cycle-server-go/internal/card"
)

func slotNames(s *CardSlots) []string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Cards() {
		if c == nil {
			names = append(names, "")
		} else {
			names = append(names, c.Name())
		}
	}
	return names
}

func TestNewCycleStateArities(t *testing.T) {
	s := NewCycleState()
	assert.Equal(t, DrawPileSize, s.DrawPile().Len())
	assert.Equal(t, ActiveHandSize, s.ActiveHand().Len())
	assert.Equal(t, DeckSize, s.Deck().Len())
	assert.Nil(t, s.Champion())
	assert.Equal(t, 0, s.CardsPlayed())
}

func TestPlayFromHandCyclesThroughDrawPile(t *testing.T) {
	s := NewCycleState()
	s.ActiveHand().ReplaceAt(0, named("Knight"))
	s.ActiveHand().ReplaceAt(1, named("Archers"))
	s.DrawPile().ReplaceAt(0, named("Giant"))
	s.DrawPile().ReplaceAt(1, named("Wizard"))
	s.DrawPile().ReplaceAt(2, named("Musketeer"))

	require.True(t, s.PlayFromHand(named("Knight")))

	assert.Equal(t, []string{"Giant", "Archers", "", ""}, slotNames(s.ActiveHand()))
	assert.Equal(t, []string{"Wizard", "Musketeer", "", "Knight"}, slotNames(s.DrawPile()))
	assert.Equal(t, 1, s.CardsPlayed())
}

func TestPlayFromHandPreservesArities(t *testing.T) {
	s := NewCycleState()
	for i, name := range []string{"Knight", "Archers", "Giant", "Wizard"} {
		s.ActiveHand().ReplaceAt(i, named(name))
	}
	for i, name := range []string{"Musketeer", "Fireball", "Hog Rider", "Lightning"} {
		s.DrawPile().ReplaceAt(i, named(name))
	}

	// Play through two full rotations; arities must hold at every step.
	order := []string{"Knight", "Archers", "Giant", "Wizard", "Musketeer", "Fireball", "Hog Rider", "Lightning"}
	for _, name := range order {
		require.True(t, s.PlayFromHand(named(name)), "playing %s", name)
		assert.Equal(t, ActiveHandSize, s.ActiveHand().Len())
		assert.Equal(t, DrawPileSize, s.DrawPile().Len())
	}
	assert.Equal(t, len(order), s.CardsPlayed())
}

func TestPlayFromHandFailsWithoutMutation(t *testing.T) {
	s := NewCycleState()
	s.ActiveHand().ReplaceAt(0, named("Knight"))
	s.DrawPile().ReplaceAt(0, named("Giant"))

	handBefore := slotNames(s.ActiveHand())
	pileBefore := slotNames(s.DrawPile())
	deckBefore := slotNames(s.Deck())

	assert.False(t, s.PlayFromHand(named("Wizard")))
	assert.False(t, s.PlayFromHand(nil))

	assert.Equal(t, handBefore, slotNames(s.ActiveHand()))
	assert.Equal(t, pileBefore, slotNames(s.DrawPile()))
	assert.Equal(t, deckBefore, slotNames(s.Deck()))
	assert.Equal(t, 0, s.CardsPlayed())
}

func TestPlayFromHandAdvancesEvolutionCycleBeforeLeavingHand(t *testing.T) {
	s := NewCycleState()
	evo := card.New("Lightning", "", card.RarityEpic, false, true)
	evo.SetEvolutionDetails(1, 1)
	s.ActiveHand().ReplaceAt(0, evo)

	require.True(t, s.PlayFromHand(evo))
	assert.Equal(t, 0, evo.CurrentCycle(), "cycle 1 of max 1 wraps to 0 on play")
}

func TestPlayFromDrawPileCyclesToBack(t *testing.T) {
	s := NewCycleState()
	for i, name := range []string{"Giant", "Wizard", "Musketeer", "Fireball"} {
		s.DrawPile().ReplaceAt(i, named(name))
	}
	handBefore := slotNames(s.ActiveHand())

	require.True(t, s.PlayFromDrawPile(named("Wizard")))

	assert.Equal(t, []string{"Giant", "Musketeer", "Fireball", "Wizard"}, slotNames(s.DrawPile()))
	assert.Equal(t, handBefore, slotNames(s.ActiveHand()), "hand must stay untouched")
	assert.Equal(t, 1, s.CardsPlayed())

	assert.False(t, s.PlayFromDrawPile(named("Knight")))
	assert.Equal(t, 1, s.CardsPlayed())
}

func TestAddCardFillsFirstEmptyHandSlot(t *testing.T) {
	s := NewCycleState()
	s.ActiveHand().ReplaceAt(0, named("Knight"))

	require.True(t, s.AddCard(named("Archers")))
	assert.Equal(t, []string{"Knight", "Archers", "", ""}, slotNames(s.ActiveHand()))
}

func TestAddCardRejectsDuplicatesAcrossContainers(t *testing.T) {
	s := NewCycleState()
	s.ActiveHand().ReplaceAt(0, named("Knight"))
	s.DrawPile().ReplaceAt(0, named("Giant"))
	s.Deck().ReplaceAt(0, named("Wizard"))

	assert.False(t, s.AddCard(named("Knight")), "duplicate in hand")
	assert.False(t, s.AddCard(named("Giant")), "duplicate in draw pile")
	assert.False(t, s.AddCard(named("Wizard")), "duplicate in deck")
	assert.False(t, s.AddCard(nil))
}

func TestAddCardFailsWhenHandAndDrawPileFull(t *testing.T) {
	s := NewCycleState()
	for i, name := range []string{"Knight", "Archers", "Giant", "Wizard"} {
		s.ActiveHand().ReplaceAt(i, named(name))
	}
	for i, name := range []string{"Musketeer", "Fireball", "Hog Rider", "Lightning"} {
		s.DrawPile().ReplaceAt(i, named(name))
	}

	assert.False(t, s.AddCard(named("P.E.K.K.A")))
}

func TestAddCardFailsWhenOnlyDrawPileHasRoom(t *testing.T) {
	// The hand is the only write target; room in the draw pile alone
	// satisfies nothing.
	s := NewCycleState()
	for i, name := range []string{"Knight", "Archers", "Giant", "Wizard"} {
		s.ActiveHand().ReplaceAt(i, named(name))
	}

	assert.False(t, s.AddCard(named("Musketeer")))
	assert.Equal(t, []string{"", "", "", ""}, slotNames(s.DrawPile()))
}

func TestAddCardTracksChampion(t *testing.T) {
	s := NewCycleState()
	champ := card.New("Archer Queen", "", card.RarityChampion, true, false)

	require.True(t, s.AddCard(champ))
	require.NotNil(t, s.Champion())
	assert.Equal(t, "Archer Queen", s.Champion().Name())
}

func TestAddCardToDeck(t *testing.T) {
	s := NewCycleState()
	require.True(t, s.AddCardToDeck(named("Knight")))
	require.True(t, s.AddCardToDeck(named("Archers")))
	assert.Equal(t, []string{"Knight", "Archers", "", "", "", "", "", ""}, slotNames(s.Deck()))

	assert.False(t, s.AddCardToDeck(named("Knight")), "duplicate in deck")

	s2 := NewCycleState()
	s2.ActiveHand().ReplaceAt(0, named("Giant"))
	assert.False(t, s2.AddCardToDeck(named("Giant")), "duplicate in hand")
}

func TestResetClearsEverything(t *testing.T) {
	s := NewCycleState()
	champ := card.New("Golden Knight", "", card.RarityChampion, true, false)
	require.True(t, s.AddCard(champ))
	require.True(t, s.AddCard(named("Knight")))
	require.True(t, s.PlayFromHand(named("Knight")))

	s.Reset()

	assert.Equal(t, DrawPileSize, s.DrawPile().Len())
	assert.Equal(t, ActiveHandSize, s.ActiveHand().Len())
	assert.Equal(t, DeckSize, s.Deck().Len())
	assert.False(t, s.DrawPile().Contains(named("Knight")))
	assert.Nil(t, s.Champion())
	assert.Equal(t, 0, s.CardsPlayed())
}
