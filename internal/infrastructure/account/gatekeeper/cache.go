package gatekeeper

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/user"
)

const defaultCacheMaxSize = 10000

type cachedPrincipal struct {
	principal user.Principal
	expiresAt time.Time
}

// principalCache holds verified principals keyed by token hash. A TTL of zero
// disables caching entirely.
type principalCache struct {
	mu      sync.RWMutex
	items   map[string]cachedPrincipal
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

func newPrincipalCache(ttl time.Duration, maxSize int) *principalCache {
	if maxSize < 1 {
		maxSize = defaultCacheMaxSize
	}

	return &principalCache{
		items:   make(map[string]cachedPrincipal),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

func (c *principalCache) Get(key string) (user.Principal, bool) {
	if c.ttl <= 0 {
		return user.Principal{}, false
	}

	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(item.expiresAt) {
		return user.Principal{}, false
	}

	return item.principal, true
}

func (c *principalCache) Set(key string, principal user.Principal) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= c.maxSize {
		c.evictLocked()
	}
	c.items[key] = cachedPrincipal{
		principal: principal,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *principalCache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// evictLocked drops expired entries first, then the soonest-expiring entry if
// the cache is still full.
func (c *principalCache) evictLocked() {
	now := c.now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
	if len(c.items) < c.maxSize {
		return
	}

	var victim string
	var victimExpiry time.Time
	for key, item := range c.items {
		if victim == "" || item.expiresAt.Before(victimExpiry) {
			victim = key
			victimExpiry = item.expiresAt
		}
	}
	if victim != "" {
		delete(c.items, victim)
	}
}

// revocationSet tracks token hashes revoked ahead of their natural expiry.
// Shared between the verify path and the revoke endpoint.
type revocationSet struct {
	mu    sync.RWMutex
	items map[string]struct{}
}

func newRevocationSet() *revocationSet {
	return &revocationSet{items: make(map[string]struct{})}
}

func (s *revocationSet) Add(key string) {
	s.mu.Lock()
	s.items[key] = struct{}{}
	s.mu.Unlock()
}

func (s *revocationSet) Contains(key string) bool {
	s.mu.RLock()
	_, ok := s.items[key]
	s.mu.RUnlock()

	return ok
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
