// Package commands holds the slash-command catalog, the scored matcher
// behind the palette, and the persisted recency list.
package commands

import (
	"strings"

	"contour/internal/kvstore"
)

// Registry pairs the static catalog with the recency list and answers
// palette queries.
type Registry struct {
	catalog []Command
	recents *Recents
}

// NewRegistry creates a registry over the default catalog.
func NewRegistry(store kvstore.Store) *Registry {
	return &Registry{
		catalog: Catalog(),
		recents: NewRecents(store),
	}
}

// Query returns the palette list for a query. Empty query: recents first,
// re-tagged into the synthetic recents category, then the full catalog in
// declaration order. Non-empty query: scored search.
func (r *Registry) Query(query string) []Command {
	query = strings.TrimSpace(query)
	if query != "" {
		return Search(r.catalog, query)
	}

	out := make([]Command, 0, len(r.catalog)+MaxRecents)
	for _, id := range r.recents.IDs() {
		if cmd, ok := r.Get(id); ok {
			cmd.Category = CategoryRecents
			out = append(out, cmd)
		}
	}
	out = append(out, r.catalog...)
	return out
}

// Get returns the catalog command with the given id.
func (r *Registry) Get(id string) (Command, bool) {
	for _, cmd := range r.catalog {
		if cmd.ID == id {
			return cmd, true
		}
	}
	return Command{}, false
}

// MarkUsed records a command use in the recency list.
func (r *Registry) MarkUsed(id string) {
	r.recents.Record(id)
}
