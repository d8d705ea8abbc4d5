package repository

import (
	"context"
	"fmt"

	"github.com/winstonung/cr-cycle-server-go/internal/catalog"
	"go.uber.org/zap"
)

// LoadCatalogEntries reads every card row into catalog entries, preserving
// name order so search results are stable across restarts.
func (db *DB) LoadCatalogEntries(ctx context.Context) ([]*catalog.Entry, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT name, icon, rarity, is_champion, is_evolution, current_cycle, max_cycle
		FROM cards
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var entries []*catalog.Entry
	for rows.Next() {
		e := &catalog.Entry{}
		if err := rows.Scan(&e.Name, &e.Icon, &e.Rarity, &e.IsChampion, &e.IsEvolution, &e.CurrentCycle, &e.MaxCycle); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read card rows: %w", err)
	}

	if db.logger != nil {
		db.logger.Info("loaded catalog from database", zap.Int("cards", len(entries)))
	}
	return entries, nil
}
