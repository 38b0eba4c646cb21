package memory

import (
	"context"
	"errors"
	"testing"

	"deal-insights-be/internal/entity"
	"deal-insights-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_Seed(t *testing.T) {
	ctx := context.Background()
	repo, err := NewProjectRepository(SeedProjects())
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	lost, err := repo.FindById(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "FashionForward", lost.Client)
	assert.Nil(t, lost.Metrics)

	_, err = repo.FindById(ctx, 99)
	assert.True(t, errors.Is(err, contract.ErrProjectNotFound))
}

func TestProjectRepository_FacetOptionsCoverEveryRecord(t *testing.T) {
	repo, err := NewProjectRepository(SeedProjects())
	require.NoError(t, err)

	opts, err := repo.FacetOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"TechCorp Inc.", "Global Bank", "RetailCo", "HealthPlus",
		"AutoDrive", "EcoEnergy", "FashionForward", "DataStream",
	}, opts.Clients)
	assert.Equal(t, entity.Industries, opts.Industries)
	assert.Equal(t, []int{2024, 2023}, opts.Years)
	assert.Equal(t, entity.Statuses, opts.Statuses)

	all, _ := repo.FindAll(context.Background())
	for _, p := range all {
		assert.Contains(t, opts.Clients, p.Client)
		assert.Contains(t, opts.Industries, p.Industry)
		assert.Contains(t, opts.Years, p.Year)
		assert.Contains(t, opts.Statuses, p.Status)
	}
}

func TestProjectRepository_FacetOptionsAreCopies(t *testing.T) {
	repo, err := NewProjectRepository(SeedProjects())
	require.NoError(t, err)

	opts, _ := repo.FacetOptions(context.Background())
	opts.Clients[0] = "changed"

	again, _ := repo.FacetOptions(context.Background())
	assert.Equal(t, "TechCorp Inc.", again.Clients[0])
}

func TestNewProjectRepository_RejectsInvalidRecords(t *testing.T) {
	valid := func(id int) *entity.Project {
		return &entity.Project{Id: id, Client: "C", Industry: entity.IndustryRetail, Year: 2024, Status: entity.StatusWon}
	}

	tests := []struct {
		name    string
		records []*entity.Project
	}{
		{"duplicate id", []*entity.Project{valid(1), valid(1)}},
		{"bad industry", []*entity.Project{{Id: 1, Client: "C", Industry: "Mining", Status: entity.StatusWon}}},
		{"bad status", []*entity.Project{{Id: 1, Client: "C", Industry: entity.IndustryRetail, Status: "Pending"}}},
		{"empty client", []*entity.Project{{Id: 1, Industry: entity.IndustryRetail, Status: entity.StatusWon}}},
		{"nil record", []*entity.Project{valid(1), nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProjectRepository(tt.records)
			assert.Error(t, err)
		})
	}
}

func TestNewProjectRepositoryWithOptions(t *testing.T) {
	opts := &entity.FacetOptions{
		Clients:    []string{"TechCorp Inc.", "Global Bank", "RetailCo", "HealthPlus"},
		Industries: entity.Industries,
		Years:      []int{2024, 2023},
		Statuses:   entity.Statuses,
	}

	_, err := NewProjectRepositoryWithOptions(SeedProjects(), opts)
	assert.ErrorContains(t, err, "AutoDrive")

	repo, err := NewProjectRepositoryWithOptions(SeedProjects()[:4], opts)
	require.NoError(t, err)
	got, _ := repo.FacetOptions(context.Background())
	assert.Equal(t, opts.Clients, got.Clients)
}
