package session

import (
	"log/slog"
	"sync"

	"github.com/teddyfinance/assistant/internal/metrics"
)

// DefaultMaxSize is the cache capacity used when none is configured.
const DefaultMaxSize = 100

// evictFraction is the share of oldest entries dropped when the cache
// exceeds capacity, in percent.
const evictFraction = 20

// Cache maps user identifiers to sessions, insertion-ordered for eviction.
// Lookup, insertion, capacity check, and eviction are atomic relative to
// concurrent GetOrCreate calls, so two first-messages from the same
// identifier always share one session. The lock is never held across
// external calls — callers take the session and release the cache.
type Cache struct {
	mu       sync.Mutex
	maxSize  int
	sessions map[string]*Session
	order    []string // identifiers, oldest insertion first
}

// NewCache creates a Cache bounded to maxSize sessions. Non-positive sizes
// fall back to DefaultMaxSize.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache{
		maxSize:  maxSize,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for the identifier, creating and inserting
// one on miss. When an insertion pushes the size above capacity, the oldest
// 20% of entries by insertion order are evicted, discarding their in-session
// memory and loaded history; history remains recoverable from the external
// store. Access does not reorder entries — this is a capacity policy, not LRU.
func (c *Cache) GetOrCreate(id string) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sess, ok := c.sessions[id]; ok {
		return sess
	}

	sess := &Session{}
	c.sessions[id] = sess
	c.order = append(c.order, id)

	if len(c.sessions) > c.maxSize {
		c.evictOldest()
	}

	metrics.SessionCacheSize.Set(float64(len(c.sessions)))
	return sess
}

// Len returns the current number of cached sessions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// evictOldest drops floor(20%) of entries by insertion order.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	count := len(c.order) * evictFraction / 100
	if count == 0 {
		return
	}
	for _, id := range c.order[:count] {
		delete(c.sessions, id)
		slog.Info("Session evicted from cache", "user_id", id)
	}
	c.order = append([]string(nil), c.order[count:]...)
	metrics.SessionEvictions.Add(float64(count))
}
