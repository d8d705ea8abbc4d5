package card

import "testing"

func TestIncreaseCycleWrapsAtMax(t *testing.T) {
	c := New("Evolution Knight", "icons/evo_knight.png", RarityCommon, false, true)
	c.SetEvolutionDetails(0, 2)

	for i, want := range []int{1, 2, 0, 1} {
		c.IncreaseCycle()
		if c.CurrentCycle() != want {
			t.Errorf("play %d: expected cycle %d, got %d", i+1, want, c.CurrentCycle())
		}
	}
}

func TestIncreaseCycleFullWrapReturnsToStart(t *testing.T) {
	// m+1 plays must return an evolution card to its starting cycle.
	for _, max := range []int{0, 1, 2, 5} {
		c := New("Evolution Archers", "", RarityCommon, false, true)
		c.SetEvolutionDetails(1%(max+1), max)
		start := c.CurrentCycle()

		for i := 0; i <= max; i++ {
			c.IncreaseCycle()
		}
		if c.CurrentCycle() != start {
			t.Errorf("max=%d: expected cycle %d after %d plays, got %d", max, start, max+1, c.CurrentCycle())
		}
	}
}

func TestEvolutionCardWithoutDetailsCyclesAtZero(t *testing.T) {
	// Construction alone must leave the card safe to play: counters sit at
	// 0/0 until SetEvolutionDetails supplies the real values.
	c := New("Evolution Knight", "", RarityCommon, false, true)

	if c.CurrentCycle() != 0 || c.MaxCycle() != 0 {
		t.Errorf("expected fresh evolution card at 0/0, got %d/%d", c.CurrentCycle(), c.MaxCycle())
	}

	c.IncreaseCycle()
	if c.CurrentCycle() != 0 {
		t.Errorf("expected cycle to stay at 0 with max 0, got %d", c.CurrentCycle())
	}
}

func TestNonEvolutionCardIgnoresCycleOperations(t *testing.T) {
	c := New("Knight", "", RarityCommon, false, false)

	c.SetEvolutionDetails(1, 3)
	if c.CurrentCycle() != NoCycle {
		t.Errorf("expected NoCycle sentinel, got %d", c.CurrentCycle())
	}
	if c.MaxCycle() != NoCycle {
		t.Errorf("expected NoCycle sentinel, got %d", c.MaxCycle())
	}

	c.IncreaseCycle()
	if c.CurrentCycle() != NoCycle {
		t.Errorf("expected IncreaseCycle to be a no-op, got %d", c.CurrentCycle())
	}
}

func TestEqualsByNameOnly(t *testing.T) {
	a := New("Knight", "icons/knight.png", RarityCommon, false, false)
	b := New("Knight", "other.png", RarityEpic, true, true)
	c := New("knight", "", RarityCommon, false, false)

	if !a.Equals(b) {
		t.Error("expected cards with the same name to be equal regardless of attributes")
	}
	if a.Equals(c) {
		t.Error("expected name comparison to be case-sensitive")
	}
	if a.Equals(nil) {
		t.Error("expected nil to never be equal")
	}
}

func TestEqualsIsReflexiveSymmetricTransitive(t *testing.T) {
	a := New("Musketeer", "", RarityRare, false, false)
	b := New("Musketeer", "x", RarityCommon, false, true)
	c := New("Musketeer", "y", RarityLegendary, false, false)

	if !a.Equals(a) {
		t.Error("expected Equals to be reflexive")
	}
	if a.Equals(b) != b.Equals(a) {
		t.Error("expected Equals to be symmetric")
	}
	if a.Equals(b) && b.Equals(c) && !a.Equals(c) {
		t.Error("expected Equals to be transitive")
	}
}

func TestEvolutionCycleWithAdvancedCountStillMatchesCatalogEntry(t *testing.T) {
	played := New("Evolution Firecracker", "", RarityCommon, false, true)
	played.SetEvolutionDetails(0, 2)
	played.IncreaseCycle()

	entry := New("Evolution Firecracker", "", RarityCommon, false, true)
	if !played.Equals(entry) {
		t.Error("expected played evolution card to still match its catalog entry")
	}
}
