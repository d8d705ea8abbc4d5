package catalog

import "strings"

// Search prefixes that alter the match predicate instead of matching
// name text.
const (
	evolutionPrefix = "evo"
	championPrefix  = "hero"
)

// Search matches a free-text query against the catalog leniently: all
// non-alphanumeric characters are stripped and the comparison is
// case-folded, so "mega knight", "Mega-Knight" and "megaknight" all hit
// the same entry. A query starting with "evo" restricts results to
// evolution cards and matches the remainder; "hero" does the same for
// champions. Results come back in catalog order; an unloaded catalog
// yields none.
func (c *Catalog) Search(query string) []*Entry {
	q := normalize(query)

	evolutionOnly := false
	championOnly := false
	switch {
	case strings.HasPrefix(q, evolutionPrefix):
		evolutionOnly = true
		q = q[len(evolutionPrefix):]
	case strings.HasPrefix(q, championPrefix):
		championOnly = true
		q = q[len(championPrefix):]
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var results []*Entry
	for _, e := range c.ordered {
		if evolutionOnly && !e.IsEvolution {
			continue
		}
		if championOnly && !e.IsChampion {
			continue
		}
		if q == "" || strings.Contains(normalize(e.Name), q) {
			results = append(results, e)
		}
	}
	return results
}

// normalize strips every non-alphanumeric rune and lowercases the rest.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
