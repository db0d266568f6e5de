// Package cache implements the TTL-keyed resolution cache. Entries are
// grouped by provider namespace; each namespace has its own TTL and size cap
// and is persisted independently through a kvstore.Store. A cache hit
// short-circuits remote resolution entirely, so correctness here is what
// keeps the detectors fast under retyping.
package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"contour/internal/kvstore"
	"contour/internal/logging"
)

// Provider namespaces and their TTLs.
const (
	NamespaceDictionary  = "dictionary"
	NamespaceTranslation = "translation"
	NamespaceCurrency    = "currency"

	TTLDictionary  = 7 * 24 * time.Hour
	TTLTranslation = 24 * time.Hour
	TTLCurrency    = time.Hour

	// DefaultCap bounds each namespace; oldest entries are evicted first.
	DefaultCap = 50
)

// Entry is a cached payload with its insertion time.
type Entry struct {
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type persisted struct {
	Entries map[string]Entry `json:"entries"`
}

type group struct {
	ttl     time.Duration
	cap     int
	entries map[string]Entry
}

// Cache is the TTL cache service. Construct one at startup and hand it to
// every resolver; there are no lazily-initialized singletons.
type Cache struct {
	store  kvstore.Store
	now    func() time.Time
	groups map[string]*group
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the time source, for TTL tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a cache over the given store with the three provider
// namespaces registered.
func New(store kvstore.Store, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		now:    time.Now,
		groups: make(map[string]*group),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.register(NamespaceDictionary, TTLDictionary)
	c.register(NamespaceTranslation, TTLTranslation)
	c.register(NamespaceCurrency, TTLCurrency)
	return c
}

// register loads a namespace from the store. An unreadable or corrupt blob
// is treated as an empty cache; it must never block detection.
func (c *Cache) register(namespace string, ttl time.Duration) {
	g := &group{
		ttl:     ttl,
		cap:     DefaultCap,
		entries: make(map[string]Entry),
	}
	c.groups[namespace] = g

	data, ok, err := c.store.Get(storeKey(namespace))
	if err != nil {
		logging.Warn("cache load failed", "namespace", namespace, "error", err)
		return
	}
	if !ok {
		return
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		logging.Warn("cache blob corrupt, starting empty", "namespace", namespace, "error", err)
		return
	}
	if p.Entries != nil {
		g.entries = p.Entries
	}
}

// Get returns the cached payload for key in namespace, or false on a miss.
// Entries older than the namespace TTL are misses.
func (c *Cache) Get(namespace, key string) (json.RawMessage, bool) {
	g, ok := c.groups[namespace]
	if !ok {
		return nil, false
	}
	entry, ok := g.entries[NormalizeKey(key)]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.Timestamp) > g.ttl {
		delete(g.entries, NormalizeKey(key))
		return nil, false
	}
	return entry.Payload, true
}

// Put stores payload under key in namespace and persists the namespace.
// Writes are idempotent overwrites keyed by normalized query, so lost-update
// races with another process are harmless.
func (c *Cache) Put(namespace, key string, payload any) error {
	g, ok := c.groups[namespace]
	if !ok {
		return fmt.Errorf("unknown cache namespace %q", namespace)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal cache payload: %w", err)
	}

	g.entries[NormalizeKey(key)] = Entry{Payload: raw, Timestamp: c.now()}
	c.evict(g)

	return c.persist(namespace, g)
}

// Len returns the number of live entries in a namespace.
func (c *Cache) Len(namespace string) int {
	g, ok := c.groups[namespace]
	if !ok {
		return 0
	}
	return len(g.entries)
}

// evict drops oldest-first entries until the group is within its cap.
func (c *Cache) evict(g *group) {
	if len(g.entries) <= g.cap {
		return
	}

	type aged struct {
		key string
		ts  time.Time
	}
	all := make([]aged, 0, len(g.entries))
	for k, e := range g.entries {
		all = append(all, aged{key: k, ts: e.Timestamp})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ts.Before(all[j].ts) })

	for _, a := range all[:len(g.entries)-g.cap] {
		delete(g.entries, a.key)
	}
}

func (c *Cache) persist(namespace string, g *group) error {
	data, err := json.Marshal(persisted{Entries: g.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal cache namespace %q: %w", namespace, err)
	}
	if err := c.store.Set(storeKey(namespace), data); err != nil {
		return fmt.Errorf("failed to persist cache namespace %q: %w", namespace, err)
	}
	return nil
}

func storeKey(namespace string) string {
	return "cache-" + namespace
}

// NormalizeKey lowercases, trims, and collapses inner whitespace so that
// retyped queries hit the same entry.
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
