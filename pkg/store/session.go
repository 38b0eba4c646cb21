package store

import (
	"sync"
	"time"

	"deal-insights-be/pkg/filter"
	"deal-insights-be/pkg/panel"
)

// Session is one browser's dashboard: its filter state and its copilot panel.
type Session struct {
	Id        string
	CreatedAt time.Time
	Panel     *panel.Controller

	mu      sync.Mutex
	filters *filter.State
}

func NewSession(id string, p *panel.Controller) *Session {
	return &Session{
		Id:        id,
		CreatedAt: time.Now(),
		Panel:     p,
		filters:   filter.NewState(),
	}
}

// Filters returns a copy of the current filter state.
func (s *Session) Filters() *filter.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// UpdateFilters applies fn atomically; on error the state is left unchanged.
func (s *Session) UpdateFilters(fn func(*filter.State) error) (*filter.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.filters.Clone()
	if err := fn(next); err != nil {
		return s.filters.Clone(), err
	}
	s.filters = next
	return s.filters.Clone(), nil
}

// Close releases the panel's pending work.
func (s *Session) Close() {
	if s.Panel != nil {
		s.Panel.Dispose()
	}
}
