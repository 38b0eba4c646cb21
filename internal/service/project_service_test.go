package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/repository/contract"
	"deal-insights-be/internal/repository/memory"
	"deal-insights-be/pkg/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedRepo(t *testing.T) *memory.ProjectRepository {
	t.Helper()
	repo, err := memory.NewProjectRepository(memory.SeedProjects())
	require.NoError(t, err)
	return repo
}

func newTestProjectService(t *testing.T) (IProjectService, *memory.ViewCache) {
	t.Helper()
	cache := memory.NewViewCache(time.Minute)
	return NewProjectService(newSeedRepo(t), cache, logger.NewNopLogger()), cache
}

func TestProjectService_ListAndStats(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	stats, err := svc.Stats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, stats.TotalProjects)
	assert.Equal(t, 7, stats.WonProjects)
	assert.Equal(t, 1, stats.LostProjects)
	assert.Equal(t, 88, stats.WinRate)
	assert.Equal(t, 8, stats.ActiveClients)

	state := filter.NewState()
	require.NoError(t, state.ToggleFacet(filter.FacetIndustry, "Finance"))
	finance, err := svc.List(ctx, state)
	require.NoError(t, err)
	require.Len(t, finance, 2)
	assert.Equal(t, "Global Bank", finance[0].Client)
	assert.Equal(t, "DataStream", finance[1].Client)
}

func TestProjectService_ViewIsCached(t *testing.T) {
	svc, cache := newTestProjectService(t)
	ctx := context.Background()

	state := filter.NewState()
	state.SetSearchText("cloud")
	first, err := svc.View(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := svc.View(ctx, state.Clone())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len(), "equal states share an entry")

	state.SetSearchText("fraud")
	_, err = svc.View(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestProjectService_Show(t *testing.T) {
	svc, _ := newTestProjectService(t)

	p, err := svc.Show(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "HealthPlus", p.Client)
	assert.Equal(t, "Dr. Priya Nair", p.ProductOwner.Name)

	_, err = svc.Show(context.Background(), 42)
	assert.True(t, errors.Is(err, contract.ErrProjectNotFound))
}

func TestProjectService_Similar(t *testing.T) {
	svc, _ := newTestProjectService(t)

	got, err := svc.Similar(context.Background(), 1, 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), DefaultSimilarLimit)
	// AutoDrive and EcoEnergy share TechCorp's industry; ties go to the lower id
	assert.Equal(t, 5, got[0].Id)
	for _, p := range got {
		assert.NotEqual(t, 1, p.Id)
	}

	got, err = svc.Similar(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.Similar(context.Background(), 99, 3)
	assert.True(t, errors.Is(err, contract.ErrProjectNotFound))
}

func TestProjectService_SearchAndDashboard(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	found, err := svc.Search(ctx, "MACHINE LEARNING")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 8, found[0].Id)

	state := filter.NewState()
	require.NoError(t, state.ToggleFacet(filter.FacetStatus, "Lost"))
	dash, err := svc.Dashboard(ctx, state)
	require.NoError(t, err)
	assert.Len(t, dash.Projects, 1)
	assert.Equal(t, 0, dash.Stats.WinRate)
	assert.Equal(t, []int{2024, 2023}, dash.Filters.Years)
	assert.Equal(t, []string{"Won", "Lost"}, dash.Filters.Statuses)
}
