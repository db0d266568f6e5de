package commands

import (
	"encoding/json"

	"contour/internal/kvstore"
	"contour/internal/logging"
)

// Recents is the bounded most-recent-first list of used command ids,
// persisted through the kv store. An unreadable blob starts an empty list.
type Recents struct {
	store kvstore.Store
	ids   []string
	max   int
}

const recentsStoreKey = "recent-commands"

// MaxRecents bounds the persisted recency list.
const MaxRecents = 5

// NewRecents loads the persisted list.
func NewRecents(store kvstore.Store) *Recents {
	r := &Recents{store: store, max: MaxRecents}

	data, ok, err := store.Get(recentsStoreKey)
	if err != nil {
		logging.Warn("recents load failed", "error", err)
		return r
	}
	if !ok {
		return r
	}
	if err := json.Unmarshal(data, &r.ids); err != nil {
		logging.Warn("recents blob corrupt, starting empty", "error", err)
		r.ids = nil
	}
	if len(r.ids) > r.max {
		r.ids = r.ids[:r.max]
	}
	return r
}

// Record moves id to the front, dedupes, truncates, and persists.
func (r *Recents) Record(id string) {
	next := make([]string, 0, len(r.ids)+1)
	next = append(next, id)
	for _, existing := range r.ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	if len(next) > r.max {
		next = next[:r.max]
	}
	r.ids = next

	data, err := json.Marshal(r.ids)
	if err != nil {
		return
	}
	if err := r.store.Set(recentsStoreKey, data); err != nil {
		logging.Warn("recents persist failed", "error", err)
	}
}

// IDs returns the list most-recent-first.
func (r *Recents) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
