package filter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"deal-insights-be/internal/entity"
)

// Selection holds the chosen values of every facet. An empty set leaves its
// dimension unrestricted. The zero value selects everything.
type Selection struct {
	clients    map[string]struct{}
	industries map[entity.Industry]struct{}
	years      map[int]struct{}
	statuses   map[entity.Status]struct{}
}

// ToggleClient adds the client when absent and removes it when present.
func (s *Selection) ToggleClient(client string) {
	if s.clients == nil {
		s.clients = make(map[string]struct{})
	}
	toggle(s.clients, client)
}

func (s *Selection) ToggleIndustry(industry entity.Industry) {
	if s.industries == nil {
		s.industries = make(map[entity.Industry]struct{})
	}
	toggle(s.industries, industry)
}

func (s *Selection) ToggleYear(year int) {
	if s.years == nil {
		s.years = make(map[int]struct{})
	}
	toggle(s.years, year)
}

func (s *Selection) ToggleStatus(status entity.Status) {
	if s.statuses == nil {
		s.statuses = make(map[entity.Status]struct{})
	}
	toggle(s.statuses, status)
}

func toggle[K comparable](set map[K]struct{}, v K) {
	if _, ok := set[v]; ok {
		delete(set, v)
		return
	}
	set[v] = struct{}{}
}

// Toggle parses raw for the given facet and toggles it.
func (s *Selection) Toggle(f Facet, raw string) error {
	switch f {
	case FacetClient:
		client := strings.TrimSpace(raw)
		if client == "" {
			return fmt.Errorf("%w: empty client", ErrInvalidFacetValue)
		}
		s.ToggleClient(client)
	case FacetIndustry:
		industry, err := entity.ParseIndustry(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFacetValue, err)
		}
		s.ToggleIndustry(industry)
	case FacetYear:
		year, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: year %q", ErrInvalidFacetValue, raw)
		}
		s.ToggleYear(year)
	case FacetStatus:
		status, err := entity.ParseStatus(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFacetValue, err)
		}
		s.ToggleStatus(status)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFacet, f)
	}
	return nil
}

// Clear empties every facet back to "no restriction".
func (s *Selection) Clear() {
	*s = Selection{}
}

// IsEmpty reports whether no facet restricts the result.
func (s *Selection) IsEmpty() bool {
	return len(s.clients) == 0 && len(s.industries) == 0 && len(s.years) == 0 && len(s.statuses) == 0
}

// Count returns how many values are selected for the facet.
func (s *Selection) Count(f Facet) int {
	switch f {
	case FacetClient:
		return len(s.clients)
	case FacetIndustry:
		return len(s.industries)
	case FacetYear:
		return len(s.years)
	case FacetStatus:
		return len(s.statuses)
	}
	return 0
}

// IsSatisfiedBy applies the per-dimension membership test, AND-combined.
func (s *Selection) IsSatisfiedBy(p *entity.Project) bool {
	if len(s.clients) > 0 {
		if _, ok := s.clients[p.Client]; !ok {
			return false
		}
	}
	if len(s.industries) > 0 {
		if _, ok := s.industries[p.Industry]; !ok {
			return false
		}
	}
	if len(s.years) > 0 {
		if _, ok := s.years[p.Year]; !ok {
			return false
		}
	}
	if len(s.statuses) > 0 {
		if _, ok := s.statuses[p.Status]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s *Selection) Clone() Selection {
	var out Selection
	for _, v := range s.Clients() {
		out.ToggleClient(v)
	}
	for _, v := range s.Industries() {
		out.ToggleIndustry(v)
	}
	for _, v := range s.Years() {
		out.ToggleYear(v)
	}
	for _, v := range s.Statuses() {
		out.ToggleStatus(v)
	}
	return out
}

// Clients returns the selected clients sorted by name.
func (s *Selection) Clients() []string {
	out := make([]string, 0, len(s.clients))
	for v := range s.clients {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Industries returns the selected industries in enumeration order.
func (s *Selection) Industries() []entity.Industry {
	out := make([]entity.Industry, 0, len(s.industries))
	for _, v := range entity.Industries {
		if _, ok := s.industries[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Years returns the selected years, most recent first.
func (s *Selection) Years() []int {
	out := make([]int, 0, len(s.years))
	for v := range s.years {
		out = append(out, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Statuses returns the selected statuses in enumeration order.
func (s *Selection) Statuses() []entity.Status {
	out := make([]entity.Status, 0, len(s.statuses))
	for _, v := range entity.Statuses {
		if _, ok := s.statuses[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Values returns the selected values of one facet in wire form.
func (s *Selection) Values(f Facet) []string {
	switch f {
	case FacetClient:
		return s.Clients()
	case FacetIndustry:
		out := make([]string, 0, len(s.industries))
		for _, v := range s.Industries() {
			out = append(out, string(v))
		}
		return out
	case FacetYear:
		out := make([]string, 0, len(s.years))
		for _, v := range s.Years() {
			out = append(out, strconv.Itoa(v))
		}
		return out
	case FacetStatus:
		out := make([]string, 0, len(s.statuses))
		for _, v := range s.Statuses() {
			out = append(out, string(v))
		}
		return out
	}
	return nil
}

// ParseSelection reads the comma-joined query form used by the dashboard client,
// e.g. client=A,B&industry=Finance. lookup returns "" for absent keys.
func ParseSelection(lookup func(key string) string) (Selection, error) {
	var sel Selection
	for _, f := range Facets {
		raw := lookup(f.String())
		if raw == "" {
			continue
		}
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			if err := sel.add(f, part); err != nil {
				return Selection{}, err
			}
		}
	}
	return sel, nil
}

// add selects the value, ignoring duplicates instead of toggling them off.
func (s *Selection) add(f Facet, raw string) error {
	before := s.Count(f)
	if err := s.Toggle(f, raw); err != nil {
		return err
	}
	if s.Count(f) < before {
		return s.Toggle(f, raw)
	}
	return nil
}

type selectionJSON struct {
	Client   []string          `json:"client"`
	Industry []entity.Industry `json:"industry"`
	Year     []int             `json:"year"`
	Status   []entity.Status   `json:"status"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{
		Client:   s.Clients(),
		Industry: s.Industries(),
		Year:     s.Years(),
		Status:   s.Statuses(),
	})
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var raw selectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Selection
	for _, v := range raw.Client {
		if err := out.add(FacetClient, v); err != nil {
			return err
		}
	}
	for _, v := range raw.Industry {
		if err := out.add(FacetIndustry, string(v)); err != nil {
			return err
		}
	}
	for _, v := range raw.Year {
		if err := out.add(FacetYear, strconv.Itoa(v)); err != nil {
			return err
		}
	}
	for _, v := range raw.Status {
		if err := out.add(FacetStatus, string(v)); err != nil {
			return err
		}
	}
	*s = out
	return nil
}
