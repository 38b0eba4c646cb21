package service

import (
	"context"
	"encoding/json"
	"fmt"

	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/mapper"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/repository/contract"
	"deal-insights-be/internal/repository/memory"
	"deal-insights-be/pkg/filter"
)

const (
	DefaultSimilarLimit = 5
	MaxSimilarLimit     = 20
)

type IProjectService interface {
	List(ctx context.Context, state *filter.State) ([]dto.ProjectResponse, error)
	Show(ctx context.Context, id int) (*dto.ProjectResponse, error)
	Similar(ctx context.Context, id, limit int) ([]dto.ProjectResponse, error)
	Stats(ctx context.Context, state *filter.State) (*dto.StatsResponse, error)
	Filters(ctx context.Context) (*dto.FilterOptionsResponse, error)
	Search(ctx context.Context, query string) ([]dto.ProjectResponse, error)
	Dashboard(ctx context.Context, state *filter.State) (*dto.DashboardResponse, error)
	View(ctx context.Context, state *filter.State) (filter.View, error)
}

type projectService struct {
	repo      contract.ProjectRepository
	viewCache *memory.ViewCache
	mapper    *mapper.ProjectMapper
	logger    logger.ILogger
}

func NewProjectService(repo contract.ProjectRepository, viewCache *memory.ViewCache, logger logger.ILogger) IProjectService {
	return &projectService{
		repo:      repo,
		viewCache: viewCache,
		mapper:    mapper.NewProjectMapper(),
		logger:    logger,
	}
}

// View computes the visible records for a filter state. Results are cached
// under the state's JSON form, which lists every facet's values in a fixed order.
func (s *projectService) View(ctx context.Context, state *filter.State) (filter.View, error) {
	if state == nil {
		state = filter.NewState()
	}

	key, err := json.Marshal(state)
	if err != nil {
		return filter.View{}, fmt.Errorf("encode view key: %w", err)
	}
	if s.viewCache != nil {
		if view, ok := s.viewCache.Get(string(key)); ok {
			return view, nil
		}
	}

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return filter.View{}, err
	}
	view := state.View(records)

	if s.viewCache != nil {
		s.viewCache.Set(string(key), view)
	}
	return view, nil
}

func (s *projectService) List(ctx context.Context, state *filter.State) ([]dto.ProjectResponse, error) {
	view, err := s.View(ctx, state)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(view.Projects), nil
}

func (s *projectService) Show(ctx context.Context, id int) (*dto.ProjectResponse, error) {
	p, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", id, err)
	}
	res := s.mapper.ToResponse(p)
	return &res, nil
}

func (s *projectService) Similar(ctx context.Context, id, limit int) ([]dto.ProjectResponse, error) {
	target, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", id, err)
	}
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	limit = min(limit, MaxSimilarLimit)

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(filter.Similar(records, target, limit)), nil
}

func (s *projectService) Stats(ctx context.Context, state *filter.State) (*dto.StatsResponse, error) {
	view, err := s.View(ctx, state)
	if err != nil {
		return nil, err
	}
	res := s.mapper.ToStatsResponse(view.Stats)
	return &res, nil
}

func (s *projectService) Filters(ctx context.Context) (*dto.FilterOptionsResponse, error) {
	opts, err := s.repo.FacetOptions(ctx)
	if err != nil {
		return nil, err
	}
	res := s.mapper.ToFilterOptionsResponse(opts)
	return &res, nil
}

func (s *projectService) Search(ctx context.Context, query string) ([]dto.ProjectResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	found := filter.Search(records, query)
	s.logger.Debug("ProjectService", "Search", map[string]interface{}{"query": query, "hits": len(found)})
	return s.mapper.ToResponses(found), nil
}

func (s *projectService) Dashboard(ctx context.Context, state *filter.State) (*dto.DashboardResponse, error) {
	view, err := s.View(ctx, state)
	if err != nil {
		return nil, err
	}
	opts, err := s.Filters(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Projects: s.mapper.ToResponses(view.Projects),
		Stats:    s.mapper.ToStatsResponse(view.Stats),
		Filters:  *opts,
	}, nil
}
