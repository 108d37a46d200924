package selection

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps one Selection per session in memory. Entries expire after
// sessionTTL without access.
type Store struct {
	mu              sync.Mutex
	cache           *cache.Cache
	notificationTTL time.Duration
}

func NewStore(sessionTTL, notificationTTL time.Duration) *Store {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	c := cache.New(sessionTTL, sessionTTL/2)
	c.OnEvicted(func(_ string, v interface{}) {
		if sel, ok := v.(*Selection); ok {
			sel.Close()
		}
	})
	return &Store{cache: c, notificationTTL: notificationTTL}
}

// Get returns the session's selection, refreshing its expiry.
func (s *Store) Get(sessionID string) (*Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touch(sessionID)
}

// GetOrCreate returns the session's selection, creating an empty one on first use.
func (s *Store) GetOrCreate(sessionID string) *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sel, ok := s.touch(sessionID); ok {
		return sel
	}
	sel := New(s.notificationTTL)
	s.cache.Set(sessionID, sel, cache.DefaultExpiration)
	return sel
}

func (s *Store) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

func (s *Store) touch(sessionID string) (*Selection, bool) {
	v, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, false
	}
	sel := v.(*Selection)
	s.cache.Set(sessionID, sel, cache.DefaultExpiration)
	return sel, true
}
