// pkg/memcache/ttl_store.go
package mem

import (
	"sync"
	"time"
)

// Store keeps opaque values until their TTL runs out.
type Store interface {
	Set(key string, value []byte, ttl time.Duration)

	// Get returns the value for key if it has not expired.
	Get(key string) ([]byte, bool)

	Delete(key string)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type TTLStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewTTLStore() *TTLStore {
	return &TTLStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Set stores a copy of value. A ttl <= 0 keeps the entry until it is deleted.
func (s *TTLStore) Set(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.data[key] = e
}

func (s *TTLStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.expired(e) {
		s.mu.Lock()
		// re-check, the key may have been refreshed meanwhile
		if cur, ok := s.data[key]; ok && s.expired(cur) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return append([]byte(nil), e.value...), true
}

func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Sweep drops every expired entry and returns how many were removed.
func (s *TTLStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, e := range s.data {
		if s.expired(e) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

func (s *TTLStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}
