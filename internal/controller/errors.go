package controller

import (
	"errors"

	"deal-insights-be/internal/pkg/serverutils"
	"deal-insights-be/internal/repository/contract"
	"deal-insights-be/internal/service"
	"deal-insights-be/pkg/filter"
	"deal-insights-be/pkg/panel"

	"github.com/gofiber/fiber/v2"
)

// translateError maps domain errors onto HTTP errors for ErrorHandlerMiddleware.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, contract.ErrProjectNotFound):
		return serverutils.NewNotFoundError("Project not found")
	case errors.Is(err, service.ErrSessionNotFound):
		return serverutils.NewNotFoundError("Session not found")
	case errors.Is(err, filter.ErrUnknownFacet),
		errors.Is(err, filter.ErrInvalidFacetValue),
		errors.Is(err, panel.ErrUnknownTarget),
		errors.Is(err, service.ErrInvalidPointer):
		return serverutils.NewBadRequestError(err.Error(), nil)
	}
	return err
}

// parseFilterState reads the facet selection and the `q` search text from the query string.
func parseFilterState(ctx *fiber.Ctx) (*filter.State, error) {
	sel, err := filter.ParseSelection(func(key string) string { return ctx.Query(key) })
	if err != nil {
		return nil, translateError(err)
	}
	state := filter.NewState()
	state.Selection = sel
	state.SetSearchText(ctx.Query("q"))
	return state, nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return serverutils.NewBadRequestError("Invalid request body", err)
	}
	return serverutils.ValidateRequest(out)
}
