package filter

import "deal-insights-be/internal/entity"

// State is the dashboard's filter state: a selection plus the search box text.
// It is mutated only through its methods and serializes to JSON as-is.
type State struct {
	Selection  Selection `json:"filters"`
	SearchText string    `json:"search_text"`
}

func NewState() *State {
	return &State{}
}

func (s *State) ToggleFacet(f Facet, raw string) error {
	return s.Selection.Toggle(f, raw)
}

func (s *State) ClearFilters() {
	s.Selection.Clear()
}

func (s *State) SetSearchText(text string) {
	s.SearchText = text
}

func (s *State) HasActiveFilters() bool {
	return !s.Selection.IsEmpty()
}

func (s *State) View(records []*entity.Project) View {
	return ComputeView(records, s.Selection, s.SearchText)
}

// Clone returns a deep copy so callers can read it outside the owner's lock.
func (s *State) Clone() *State {
	return &State{
		Selection:  s.Selection.Clone(),
		SearchText: s.SearchText,
	}
}
