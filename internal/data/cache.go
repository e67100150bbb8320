package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

// CacheEntry represents a cached price API response.
type CacheEntry struct {
	Response  *model.PriceHistoryResponse
	ExpiresAt time.Time
}

// ResponseCache provides in-memory caching of price history responses.
// The cache is opt-in via ENABLE_PRICE_CACHE=true and is disabled outright
// when API_ENV=production; stale commercial data must not leak into
// production valuations.
type ResponseCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
}

var globalCache *ResponseCache
var cacheOnce sync.Once

// GetCache returns the global cache instance if caching is enabled,
// nil otherwise.
func GetCache() *ResponseCache {
	if os.Getenv("ENABLE_PRICE_CACHE") != "true" {
		return nil
	}
	if os.Getenv("API_ENV") == "production" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("PRICE_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}
		globalCache = &ResponseCache{
			store: make(map[string]*CacheEntry),
			ttl:   ttl,
		}
		go globalCache.cleanup()
	})
	return globalCache
}

// Get retrieves a cached response if present and not expired.
func (c *ResponseCache) Get(key string) (*model.PriceHistoryResponse, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.store[key]
	if !ok || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Response, true
}

// Set stores a response under key.
func (c *ResponseCache) Set(key string, resp *model.PriceHistoryResponse) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = &CacheEntry{
		Response:  resp,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

func (c *ResponseCache) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// GenerateCacheKey derives a stable key from query parameters.
func GenerateCacheKey(params QuerySeriesParams) string {
	raw := fmt.Sprintf("%s|%s|%s|%s",
		params.Hub,
		params.StartDate.Format("2006-01-02"),
		params.EndDate.Format("2006-01-02"),
		params.Frequency,
	)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
