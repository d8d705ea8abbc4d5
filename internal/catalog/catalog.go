// Package catalog holds the read-only card catalog the tracker draws
// construction parameters from. The catalog is loaded once at startup,
// fire-and-forget; until the load completes lookups and searches simply
// find nothing.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/winstonung/cr-cycle-server-go/internal/card"
	"go.uber.org/zap"
)

// Entry is the explicit schema for one catalog record at the load
// boundary. It is converted to a card.Card exactly once, on lookup.
type Entry struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Rarity       string `json:"rarity"`
	IsChampion   bool   `json:"isChampion"`
	IsEvolution  bool   `json:"isEvolution"`
	CurrentCycle int    `json:"currentcycle"`
	MaxCycle     int    `json:"maxcycle"`
}

// Card builds a fresh card instance from the entry. Each call returns a
// new instance so one session's cycle counters never bleed into another.
func (e *Entry) Card() *card.Card {
	c := card.New(e.Name, e.Icon, card.Rarity(e.Rarity), e.IsChampion, e.IsEvolution)
	if e.IsEvolution {
		c.SetEvolutionDetails(e.CurrentCycle, e.MaxCycle)
	}
	return c
}

// Catalog maps card names to entries, preserving load order for search
// results. Safe for concurrent use: the async startup load swaps contents
// under the same lock the lookups take.
type Catalog struct {
	mu      sync.RWMutex
	byName  map[string]*Entry
	ordered []*Entry
	logger  *zap.Logger
}

// New creates an empty catalog.
func New(logger *zap.Logger) *Catalog {
	return &Catalog{
		byName: make(map[string]*Entry),
		logger: logger,
	}
}

// LoadFile reads a JSON array of entries from path and replaces the
// catalog contents.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	c.Replace(entries)

	if c.logger != nil {
		c.logger.Info("card catalog loaded",
			zap.String("path", path),
			zap.Int("cards", len(entries)),
		)
	}
	return nil
}

// Replace swaps the catalog contents for the given entries. Entries with
// duplicate names keep the first occurrence.
func (c *Catalog) Replace(entries []*Entry) {
	byName := make(map[string]*Entry, len(entries))
	ordered := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if _, exists := byName[e.Name]; exists {
			continue
		}
		byName[e.Name] = e
		ordered = append(ordered, e)
	}

	c.mu.Lock()
	c.byName = byName
	c.ordered = ordered
	c.mu.Unlock()
}

// Get returns the entry for an exact name, or false when the name is
// unknown or the catalog has not loaded yet.
func (c *Catalog) Get(name string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byName[name]
	return e, ok
}

// Size returns the number of loaded entries.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}

// All returns the entries in load order.
func (c *Catalog) All() []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cpy := make([]*Entry, len(c.ordered))
	copy(cpy, c.ordered)
	return cpy
}
