// Package filter narrows the project catalog by facet selection and free-text
// search, and derives the dashboard statistics of whatever remains visible.
package filter

import (
	"strings"

	"deal-insights-be/internal/entity"
)

// Specification is a predicate over a single project.
type Specification interface {
	IsSatisfiedBy(p *entity.Project) bool
}

// And is satisfied when every member is. Members are checked in order and the
// first rejection stops evaluation.
type And []Specification

func (a And) IsSatisfiedBy(p *entity.Project) bool {
	for _, spec := range a {
		if !spec.IsSatisfiedBy(p) {
			return false
		}
	}
	return true
}

// TextQuery matches a case-insensitive substring of the client name, the
// objectives, or any one strategy label. An empty query matches everything.
type TextQuery struct {
	needle string
}

func NewTextQuery(query string) TextQuery {
	return TextQuery{needle: strings.ToLower(query)}
}

func (t TextQuery) IsSatisfiedBy(p *entity.Project) bool {
	if t.needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Client), t.needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Objectives), t.needle) {
		return true
	}
	for _, s := range p.Strategies {
		if strings.Contains(strings.ToLower(s), t.needle) {
			return true
		}
	}
	return false
}

// Stats summarises a visible set.
type Stats struct {
	TotalProjects int
	WonProjects   int
	LostProjects  int
	WinRate       int
	ActiveClients int
}

// View is the visible set together with its statistics.
type View struct {
	Projects []*entity.Project
	Stats    Stats
}

// ComputeView returns the records passing the selection and the search text, in
// their original order. The output depends only on the three inputs.
func ComputeView(records []*entity.Project, sel Selection, searchText string) View {
	// facet membership is a map lookup, so it runs before the substring scan
	spec := And{&sel, NewTextQuery(searchText)}

	visible := make([]*entity.Project, 0, len(records))
	for _, p := range records {
		if spec.IsSatisfiedBy(p) {
			visible = append(visible, p)
		}
	}

	return View{
		Projects: visible,
		Stats:    ComputeStats(visible),
	}
}

// Search applies only the text predicate.
func Search(records []*entity.Project, query string) []*entity.Project {
	return ComputeView(records, Selection{}, query).Projects
}

func ComputeStats(visible []*entity.Project) Stats {
	stats := Stats{TotalProjects: len(visible)}
	clients := make(map[string]struct{}, len(visible))

	for _, p := range visible {
		switch p.Status {
		case entity.StatusWon:
			stats.WonProjects++
		case entity.StatusLost:
			stats.LostProjects++
		}
		clients[p.Client] = struct{}{}
	}

	stats.WinRate = WinRate(stats.WonProjects, stats.TotalProjects)
	stats.ActiveClients = len(clients)
	return stats
}

// WinRate is round(100*won/total) with halves rounded up, and 0 for an empty set.
func WinRate(won, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*won + total) / (2 * total)
}
