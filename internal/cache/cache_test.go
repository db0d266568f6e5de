package cache

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contour/internal/kvstore"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(t *testing.T) (*Cache, *fakeClock, kvstore.Store) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := kvstore.NewMemStore()
	return New(store, WithClock(clock.now)), clock, store
}

func TestCache_TTLBoundaries(t *testing.T) {
	c, clock, _ := newTestCache(t)

	require.NoError(t, c.Put(NamespaceCurrency, "100 usd to eur", map[string]float64{"rate": 0.92}))

	// Served verbatim just inside the TTL.
	clock.advance(TTLCurrency - time.Second)
	payload, ok := c.Get(NamespaceCurrency, "100 usd to eur")
	require.True(t, ok)
	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, 0.92, decoded["rate"])

	// Absent just past the TTL.
	clock.advance(2 * time.Second)
	_, ok = c.Get(NamespaceCurrency, "100 usd to eur")
	assert.False(t, ok)
}

func TestCache_PerNamespaceTTL(t *testing.T) {
	c, clock, _ := newTestCache(t)

	require.NoError(t, c.Put(NamespaceCurrency, "rates usd", "v1"))
	require.NoError(t, c.Put(NamespaceTranslation, "hello|es", "hola"))
	require.NoError(t, c.Put(NamespaceDictionary, "serendipity", "n."))

	// Two hours in: currency expired, the others live.
	clock.advance(2 * time.Hour)
	_, ok := c.Get(NamespaceCurrency, "rates usd")
	assert.False(t, ok)
	_, ok = c.Get(NamespaceTranslation, "hello|es")
	assert.True(t, ok)
	_, ok = c.Get(NamespaceDictionary, "serendipity")
	assert.True(t, ok)

	// Two days in: translation expired, dictionary still live.
	clock.advance(46 * time.Hour)
	_, ok = c.Get(NamespaceTranslation, "hello|es")
	assert.False(t, ok)
	_, ok = c.Get(NamespaceDictionary, "serendipity")
	assert.True(t, ok)
}

func TestCache_KeyNormalization(t *testing.T) {
	c, _, _ := newTestCache(t)

	require.NoError(t, c.Put(NamespaceDictionary, "  Hello   World ", "x"))
	_, ok := c.Get(NamespaceDictionary, "hello world")
	assert.True(t, ok)
}

func TestCache_CapEvictsOldestFirst(t *testing.T) {
	c, clock, _ := newTestCache(t)

	for i := 0; i < DefaultCap+10; i++ {
		clock.advance(time.Millisecond)
		require.NoError(t, c.Put(NamespaceDictionary, fmt.Sprintf("word-%d", i), i))
	}

	assert.Equal(t, DefaultCap, c.Len(NamespaceDictionary))

	// The ten oldest are gone, the newest survive.
	for i := 0; i < 10; i++ {
		_, ok := c.Get(NamespaceDictionary, fmt.Sprintf("word-%d", i))
		assert.False(t, ok, "word-%d should have been evicted", i)
	}
	_, ok := c.Get(NamespaceDictionary, fmt.Sprintf("word-%d", DefaultCap+9))
	assert.True(t, ok)
}

func TestCache_PersistsAndReloads(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := kvstore.NewMemStore()

	c := New(store, WithClock(clock.now))
	require.NoError(t, c.Put(NamespaceTranslation, "hello|fr", "bonjour"))

	// A fresh cache over the same store sees the entry.
	c2 := New(store, WithClock(clock.now))
	payload, ok := c2.Get(NamespaceTranslation, "hello|fr")
	require.True(t, ok)
	var s string
	require.NoError(t, json.Unmarshal(payload, &s))
	assert.Equal(t, "bonjour", s)
}

func TestCache_CorruptBlobIsEmptyCache(t *testing.T) {
	store := kvstore.NewMemStore()
	require.NoError(t, store.Set("cache-dictionary", []byte("{not json")))

	c := New(store)
	_, ok := c.Get(NamespaceDictionary, "anything")
	assert.False(t, ok)

	// And writes still work afterwards.
	require.NoError(t, c.Put(NamespaceDictionary, "anything", "v"))
	_, ok = c.Get(NamespaceDictionary, "anything")
	assert.True(t, ok)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("recents", []byte(`["a","b"]`)))
	data, ok, err := store.Get("recents")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["a","b"]`, string(data))
}
