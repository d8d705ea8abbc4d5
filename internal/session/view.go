package session

import (
	"fmt"

	"github.com/winstonung/cr-cycle-server-go/internal/card"
	"github.com/winstonung/cr-cycle-server-go/internal/cycle"
)

// SlotView is the client-facing representation of one card slot. Empty
// slots render as Empty=true with every other field zeroed.
type SlotView struct {
	Empty      bool   `json:"empty"`
	Name       string `json:"name,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Rarity     string `json:"rarity,omitempty"`
	IsChampion bool   `json:"is_champion,omitempty"`
	// CycleLabel is "current/max" for evolution cards, empty otherwise.
	CycleLabel string `json:"cycle_label,omitempty"`
}

// View is the full player-visible state of one session, built fresh after
// every successful mutation and pushed to the display layer.
type View struct {
	SessionID   string     `json:"session_id"`
	ActiveHand  []SlotView `json:"active_hand"`
	DrawPile    []SlotView `json:"draw_pile"`
	Deck        []SlotView `json:"deck"`
	Champion    string     `json:"champion,omitempty"`
	CardsPlayed int        `json:"cards_played"`
	CanUndo     bool       `json:"can_undo"`
}

func buildView(id string, s *cycle.CycleState) View {
	v := View{
		SessionID:   id,
		ActiveHand:  buildSlotViews(s.ActiveHand()),
		DrawPile:    buildSlotViews(s.DrawPile()),
		Deck:        buildSlotViews(s.Deck()),
		CardsPlayed: s.CardsPlayed(),
	}
	if champ := s.Champion(); champ != nil {
		v.Champion = champ.Name()
	}
	return v
}

func buildSlotViews(slots *cycle.CardSlots) []SlotView {
	views := make([]SlotView, 0, slots.Len())
	for _, c := range slots.Cards() {
		views = append(views, buildSlotView(c))
	}
	return views
}

func buildSlotView(c *card.Card) SlotView {
	if c == nil {
		return SlotView{Empty: true}
	}
	v := SlotView{
		Name:       c.Name(),
		Icon:       c.Icon(),
		Rarity:     string(c.Rarity()),
		IsChampion: c.IsChampion(),
	}
	if c.IsEvolution() {
		v.CycleLabel = fmt.Sprintf("%d/%d", c.CurrentCycle(), c.MaxCycle())
	}
	return v
}
