package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"deal-insights-be/internal/entity"
	"deal-insights-be/internal/repository/contract"
)

type ProjectRepository struct {
	records []*entity.Project
	byId    map[int]*entity.Project
	options *entity.FacetOptions
}

// NewProjectRepository indexes records and derives the facet enumerations
// from them. Duplicate ids and values outside the closed sets are rejected.
func NewProjectRepository(records []*entity.Project) (*ProjectRepository, error) {
	byId := make(map[int]*entity.Project, len(records))
	for _, p := range records {
		if p == nil {
			return nil, fmt.Errorf("nil project record")
		}
		if _, dup := byId[p.Id]; dup {
			return nil, fmt.Errorf("duplicate project id %d", p.Id)
		}
		if !p.Industry.Valid() {
			return nil, fmt.Errorf("project %d: unknown industry %q", p.Id, p.Industry)
		}
		if !p.Status.Valid() {
			return nil, fmt.Errorf("project %d: unknown status %q", p.Id, p.Status)
		}
		if p.Client == "" {
			return nil, fmt.Errorf("project %d: empty client", p.Id)
		}
		byId[p.Id] = p
	}

	return &ProjectRepository{
		records: append([]*entity.Project(nil), records...),
		byId:    byId,
		options: deriveFacetOptions(records),
	}, nil
}

// NewProjectRepositoryWithOptions uses the supplied enumerations instead of
// deriving them, and rejects any record whose values fall outside them.
func NewProjectRepositoryWithOptions(records []*entity.Project, opts *entity.FacetOptions) (*ProjectRepository, error) {
	repo, err := NewProjectRepository(records)
	if err != nil {
		return nil, err
	}
	for _, p := range records {
		if !slices.Contains(opts.Clients, p.Client) {
			return nil, fmt.Errorf("project %d: client %q missing from facet options", p.Id, p.Client)
		}
		if !slices.Contains(opts.Industries, p.Industry) {
			return nil, fmt.Errorf("project %d: industry %q missing from facet options", p.Id, p.Industry)
		}
		if !slices.Contains(opts.Years, p.Year) {
			return nil, fmt.Errorf("project %d: year %d missing from facet options", p.Id, p.Year)
		}
		if !slices.Contains(opts.Statuses, p.Status) {
			return nil, fmt.Errorf("project %d: status %q missing from facet options", p.Id, p.Status)
		}
	}
	repo.options = opts
	return repo, nil
}

// deriveFacetOptions lists clients in first-seen order, years newest first, and
// industries and statuses in their display order.
func deriveFacetOptions(records []*entity.Project) *entity.FacetOptions {
	seenClients := make(map[string]struct{})
	var clients []string
	industries := make(map[entity.Industry]struct{})
	years := make(map[int]struct{})
	statuses := make(map[entity.Status]struct{})
	for _, p := range records {
		if _, ok := seenClients[p.Client]; !ok {
			seenClients[p.Client] = struct{}{}
			clients = append(clients, p.Client)
		}
		industries[p.Industry] = struct{}{}
		years[p.Year] = struct{}{}
		statuses[p.Status] = struct{}{}
	}

	opts := &entity.FacetOptions{
		Clients:    append([]string{}, clients...),
		Industries: []entity.Industry{},
		Years:      make([]int, 0, len(years)),
		Statuses:   []entity.Status{},
	}
	for _, i := range entity.Industries {
		if _, ok := industries[i]; ok {
			opts.Industries = append(opts.Industries, i)
		}
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(opts.Years)))
	for _, s := range entity.Statuses {
		if _, ok := statuses[s]; ok {
			opts.Statuses = append(opts.Statuses, s)
		}
	}
	return opts
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	return append([]*entity.Project(nil), r.records...), nil
}

func (r *ProjectRepository) FindById(ctx context.Context, id int) (*entity.Project, error) {
	p, ok := r.byId[id]
	if !ok {
		return nil, contract.ErrProjectNotFound
	}
	return p, nil
}

func (r *ProjectRepository) FacetOptions(ctx context.Context) (*entity.FacetOptions, error) {
	return &entity.FacetOptions{
		Clients:    append([]string(nil), r.options.Clients...),
		Industries: append([]entity.Industry(nil), r.options.Industries...),
		Years:      append([]int(nil), r.options.Years...),
		Statuses:   append([]entity.Status(nil), r.options.Statuses...),
	}, nil
}
