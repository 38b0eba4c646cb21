package memory

import (
	"time"

	"deal-insights-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps sessions in memory with a sliding expiry. A session
// that expires or is deleted has its panel disposed.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*store.Session); ok {
			s.Close()
		}
	})
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

// Get returns the session and pushes its expiry forward.
func (r *SessionRepository) Get(sessionId string) (*store.Session, bool) {
	x, found := r.cache.Get(sessionId)
	if !found {
		return nil, false
	}
	s := x.(*store.Session)
	r.cache.Set(sessionId, s, cache.DefaultExpiration)
	return s, true
}

func (r *SessionRepository) Delete(sessionId string) bool {
	if _, found := r.cache.Get(sessionId); !found {
		return false
	}
	r.cache.Delete(sessionId)
	return true
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

// Flush disposes every session, for shutdown.
func (r *SessionRepository) Flush() {
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*store.Session); ok {
			s.Close()
		}
	}
	r.cache.Flush()
}
