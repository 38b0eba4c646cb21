package filter

import (
	"testing"

	"deal-insights-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSimilar(t *testing.T) {
	records := []*entity.Project{
		{Id: 1, Client: "A", Industry: entity.IndustryFinance, Year: 2024, Strategies: []string{"Machine Learning", "Analytics"}},
		{Id: 2, Client: "B", Industry: entity.IndustryFinance, Year: 2023, Strategies: []string{"UX Research"}},
		{Id: 3, Client: "C", Industry: entity.IndustryRetail, Year: 2022, Strategies: []string{"machine learning", "analytics"}},
		{Id: 4, Client: "D", Industry: entity.IndustryHealthcare, Year: 2021, Strategies: []string{"Compliance"}},
		{Id: 5, Client: "E", Industry: entity.IndustryTechnology, Year: 2024, Strategies: nil},
	}
	target := records[0]

	got := Similar(records, target, 0)

	// 3: two shared strategies (4); 2: same industry (3); 5: same year (1); 4 shares nothing
	assert.Equal(t, []int{3, 2, 5}, ids(got))
}

func TestSimilar_LimitAndTieBreak(t *testing.T) {
	records := []*entity.Project{
		{Id: 10, Client: "T", Industry: entity.IndustryRetail, Year: 2023},
		{Id: 12, Client: "X", Industry: entity.IndustryRetail, Year: 2020},
		{Id: 11, Client: "Y", Industry: entity.IndustryRetail, Year: 2020},
		{Id: 13, Client: "Z", Industry: entity.IndustryRetail, Year: 2020},
	}

	got := Similar(records, records[0], 2)
	assert.Equal(t, []int{11, 12}, ids(got))
}

func TestSimilar_ExcludesTarget(t *testing.T) {
	records := fixtureProjects()
	for _, target := range records {
		for _, p := range Similar(records, target, 0) {
			assert.NotEqual(t, target.Id, p.Id)
		}
	}
}
