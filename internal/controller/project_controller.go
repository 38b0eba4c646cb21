package controller

import (
	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/pkg/serverutils"
	"deal-insights-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Similar(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Filters(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type projectController struct {
	projectService service.IProjectService
}

func NewProjectController(projectService service.IProjectService) IProjectController {
	return &projectController{
		projectService: projectService,
	}
}

// Bodies are bare JSON to match what the dashboard client reads.
func (c *projectController) RegisterRoutes(r fiber.Router) {
	r.Get("/projects", c.List)
	r.Get("/projects/:id", c.Show)
	r.Get("/projects/:id/similar", c.Similar)
	r.Get("/stats", c.Stats)
	r.Get("/filters", c.Filters)
	r.Post("/search", c.Search)
	r.Get("/dashboard", c.Dashboard)
}

func projectId(ctx *fiber.Ctx) (int, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return 0, serverutils.NewBadRequestError("Project id must be an integer", err)
	}
	return id, nil
}

func (c *projectController) List(ctx *fiber.Ctx) error {
	state, err := parseFilterState(ctx)
	if err != nil {
		return err
	}
	res, err := c.projectService.List(ctx.UserContext(), state)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(res)
}

func (c *projectController) Show(ctx *fiber.Ctx) error {
	id, err := projectId(ctx)
	if err != nil {
		return err
	}
	res, err := c.projectService.Show(ctx.UserContext(), id)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(res)
}

func (c *projectController) Similar(ctx *fiber.Ctx) error {
	id, err := projectId(ctx)
	if err != nil {
		return err
	}
	var req dto.SimilarProjectsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid limit", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.Similar(ctx.UserContext(), id, req.Limit)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(res)
}

func (c *projectController) Stats(ctx *fiber.Ctx) error {
	state, err := parseFilterState(ctx)
	if err != nil {
		return err
	}
	res, err := c.projectService.Stats(ctx.UserContext(), state)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(res)
}

func (c *projectController) Filters(ctx *fiber.Ctx) error {
	res, err := c.projectService.Filters(ctx.UserContext())
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(res)
}

func (c *projectController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.projectService.Search(ctx.UserContext(), req.Query)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(res)
}

func (c *projectController) Dashboard(ctx *fiber.Ctx) error {
	state, err := parseFilterState(ctx)
	if err != nil {
		return err
	}
	res, err := c.projectService.Dashboard(ctx.UserContext(), state)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(res)
}
