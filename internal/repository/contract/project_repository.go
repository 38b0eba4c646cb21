package contract

import (
	"context"
	"errors"

	"deal-insights-be/internal/entity"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository is read-only; returned records must not be mutated.
type ProjectRepository interface {
	FindAll(ctx context.Context) ([]*entity.Project, error)
	FindById(ctx context.Context, id int) (*entity.Project, error)
	FacetOptions(ctx context.Context) (*entity.FacetOptions, error)
}
