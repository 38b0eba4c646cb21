package filter

import (
	"sort"
	"strings"

	"deal-insights-be/internal/entity"
)

const (
	scoreSameIndustry   = 3
	scoreSharedStrategy = 2
	scoreSameYear       = 1
	scoreSameClient     = 1
)

type scored struct {
	project *entity.Project
	score   int
}

// Similar ranks the other records by how much they share with target. Records
// sharing nothing are left out. limit <= 0 returns every match.
func Similar(records []*entity.Project, target *entity.Project, limit int) []*entity.Project {
	strategies := make(map[string]struct{}, len(target.Strategies))
	for _, s := range target.Strategies {
		strategies[strings.ToLower(s)] = struct{}{}
	}

	matches := make([]scored, 0, len(records))
	for _, p := range records {
		if p.Id == target.Id {
			continue
		}
		score := 0
		if p.Industry == target.Industry {
			score += scoreSameIndustry
		}
		for _, s := range p.Strategies {
			if _, ok := strategies[strings.ToLower(s)]; ok {
				score += scoreSharedStrategy
			}
		}
		if p.Year == target.Year {
			score += scoreSameYear
		}
		if p.Client == target.Client {
			score += scoreSameClient
		}
		if score > 0 {
			matches = append(matches, scored{project: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].project.Id < matches[j].project.Id
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]*entity.Project, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.project)
	}
	return out
}
