package api

import (
	"fmt"
	"time"

	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
	"github.com/jjjonesjr33/petlibro/providers"
	"github.com/patrickmn/go-cache"
)

// Cache key is typed so expiry stays per (device, endpoint).
type cacheKey struct {
	serial   string
	endpoint enums.Endpoint
}

// String returns storage representation of the key.
func (k cacheKey) String() string {
	return fmt.Sprintf("%s_%s", k.serial, k.endpoint)
}

type cacheEntry struct {
	fetched time.Time
	data    map[string]interface{}
}

// Short-lived response cache for fragment endpoints.
// Staleness is decided against the injected clock so expiry is
// deterministic under test; entries are never invalidated explicitly.
type responseCache struct {
	ttl   time.Duration
	clock providers.IClockProvider
	store *cache.Cache
}

// Constructs a new response cache.
func newResponseCache(ttl time.Duration, clock providers.IClockProvider) *responseCache {
	return &responseCache{
		ttl:   ttl,
		clock: clock,
		store: cache.New(cache.NoExpiration, 0),
	}
}

// Returns a fresh cached payload, if any.
func (c *responseCache) get(serial string, endpoint enums.Endpoint) (map[string]interface{}, bool) {
	v, ok := c.store.Get(cacheKey{serial: serial, endpoint: endpoint}.String())
	if !ok {
		return nil, false
	}

	entry := v.(*cacheEntry)
	if c.clock.Now().Sub(entry.fetched) >= c.ttl {
		return nil, false
	}

	return entry.data, true
}

// Stores a payload with the current fetch time.
func (c *responseCache) set(serial string, endpoint enums.Endpoint, data map[string]interface{}) {
	entry := &cacheEntry{
		fetched: c.clock.Now(),
		data:    data,
	}

	c.store.Set(cacheKey{serial: serial, endpoint: endpoint}.String(), entry, cache.NoExpiration)
}
