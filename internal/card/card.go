package card

// NoCycle is returned by the cycle accessors when the card is not an
// evolution card. Callers must treat it as "not applicable", never as a
// valid cycle position.
const NoCycle = -1

// Rarity classifies a card. The tracker only carries it through to the
// display layer; no gameplay rule depends on it.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityChampion  Rarity = "champion"
)

// Card is one card in a player's deck. Identity is the name alone; two
// Cards with the same name are interchangeable regardless of cycle state.
// The struct is immutable after construction except for the evolution
// cycle counters, which the owning cycle state advances in place when
// this specific instance is played.
type Card struct {
	name        string
	icon        string
	rarity      Rarity
	isChampion  bool
	isEvolution bool

	currentCycle int
	maxCycle     int
}

// New creates a card. Evolution cards start with their counters at 0/0
// until SetEvolutionDetails provides the real values; non-evolution cards
// hold the NoCycle sentinel.
func New(name, icon string, rarity Rarity, isChampion, isEvolution bool) *Card {
	c := &Card{
		name:         name,
		icon:         icon,
		rarity:       rarity,
		isChampion:   isChampion,
		isEvolution:  isEvolution,
		currentCycle: NoCycle,
		maxCycle:     NoCycle,
	}
	if isEvolution {
		c.currentCycle = 0
		c.maxCycle = 0
	}
	return c
}

// Name returns the card's identity.
func (c *Card) Name() string { return c.name }

// Icon returns the opaque icon reference for the display layer.
func (c *Card) Icon() string { return c.icon }

// Rarity returns the card's rarity.
func (c *Card) Rarity() Rarity { return c.rarity }

// IsChampion reports whether the card is a champion.
func (c *Card) IsChampion() bool { return c.isChampion }

// IsEvolution reports whether the card carries evolution cycle counters.
func (c *Card) IsEvolution() bool { return c.isEvolution }

// SetEvolutionDetails sets both cycle counters. Silently ignored on
// non-evolution cards. The values are not range-checked here; IncreaseCycle
// keeps the counter inside 0..max.
func (c *Card) SetEvolutionDetails(current, max int) {
	if !c.isEvolution {
		return
	}
	c.currentCycle = current
	c.maxCycle = max
}

// IncreaseCycle advances the evolution counter by one, wrapping to 0 after
// reaching the maximum, so the sequence runs 0..max inclusive. No-op on
// non-evolution cards.
func (c *Card) IncreaseCycle() {
	if !c.isEvolution {
		return
	}
	c.currentCycle = (c.currentCycle + 1) % (c.maxCycle + 1)
}

// CurrentCycle returns the current evolution cycle, or NoCycle for
// non-evolution cards.
func (c *Card) CurrentCycle() int {
	if !c.isEvolution {
		return NoCycle
	}
	return c.currentCycle
}

// MaxCycle returns the maximum evolution cycle, or NoCycle for
// non-evolution cards.
func (c *Card) MaxCycle() int {
	if !c.isEvolution {
		return NoCycle
	}
	return c.maxCycle
}

// Equals reports whether both cards name the same catalog entry. This is an
// identity check, not deep equality: rarity, icon and cycle state are not
// compared, so a played evolution card still matches its catalog entry.
func (c *Card) Equals(other *Card) bool {
	if other == nil {
		return false
	}
	return c.name == other.name
}
