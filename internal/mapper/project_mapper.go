package mapper

import (
	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/entity"
	"deal-insights-be/pkg/filter"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToResponse(p *entity.Project) dto.ProjectResponse {
	res := dto.ProjectResponse{
		Id:            p.Id,
		Client:        p.Client,
		ClientInitial: p.ClientInitial,
		ClientColor:   p.ClientColor,
		Industry:      string(p.Industry),
		Year:          p.Year,
		Status:        string(p.Status),
		Objectives:    p.Objectives,
		Strategies:    append([]string{}, p.Strategies...),
		KeyOutcomes:   p.KeyOutcomes,
	}
	if p.ProductOwner != nil {
		res.ProductOwner = &dto.ProductOwnerResponse{
			Name:  p.ProductOwner.Name,
			Email: p.ProductOwner.Email,
		}
	}
	if p.Metrics != nil {
		res.Metrics = &dto.MetricsResponse{
			CostEfficiency: p.Metrics.CostEfficiency,
			TimeSaved:      p.Metrics.TimeSaved,
			Satisfaction:   p.Metrics.Satisfaction,
		}
	}
	return res
}

func (m *ProjectMapper) ToResponses(projects []*entity.Project) []dto.ProjectResponse {
	res := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		res = append(res, m.ToResponse(p))
	}
	return res
}

func (m *ProjectMapper) ToStatsResponse(s filter.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalProjects: s.TotalProjects,
		WonProjects:   s.WonProjects,
		LostProjects:  s.LostProjects,
		WinRate:       s.WinRate,
		ActiveClients: s.ActiveClients,
	}
}

func (m *ProjectMapper) ToViewResponse(v filter.View) dto.ViewResponse {
	return dto.ViewResponse{
		Projects: m.ToResponses(v.Projects),
		Stats:    m.ToStatsResponse(v.Stats),
	}
}

func (m *ProjectMapper) ToFilterOptionsResponse(o *entity.FacetOptions) dto.FilterOptionsResponse {
	res := dto.FilterOptionsResponse{
		Clients:    append([]string{}, o.Clients...),
		Industries: make([]string, 0, len(o.Industries)),
		Years:      append([]int{}, o.Years...),
		Statuses:   make([]string, 0, len(o.Statuses)),
	}
	for _, i := range o.Industries {
		res.Industries = append(res.Industries, string(i))
	}
	for _, s := range o.Statuses {
		res.Statuses = append(res.Statuses, string(s))
	}
	return res
}
