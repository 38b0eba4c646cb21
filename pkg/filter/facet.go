package filter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFacet      = errors.New("unknown facet")
	ErrInvalidFacetValue = errors.New("invalid facet value")
)

// Facet is one filterable dimension of a project.
type Facet int

const (
	FacetClient Facet = iota
	FacetIndustry
	FacetYear
	FacetStatus
)

// Facets lists every dimension in sidebar order.
var Facets = []Facet{FacetClient, FacetIndustry, FacetYear, FacetStatus}

func (f Facet) String() string {
	switch f {
	case FacetClient:
		return "client"
	case FacetIndustry:
		return "industry"
	case FacetYear:
		return "year"
	case FacetStatus:
		return "status"
	default:
		return fmt.Sprintf("facet(%d)", int(f))
	}
}

// ParseFacet accepts the wire name of a facet ("client", "industry", "year", "status").
func ParseFacet(raw string) (Facet, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, f := range Facets {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFacet, raw)
}
