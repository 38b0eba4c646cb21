package controller

import (
	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/pkg/serverutils"
	"deal-insights-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ToggleFilter(ctx *fiber.Ctx) error
	ClearFilters(ctx *fiber.Ctx) error
	SetSearch(ctx *fiber.Ctx) error
	OpenPanel(ctx *fiber.Ctx) error
	ClosePanel(ctx *fiber.Ctx) error
	ToggleExpand(ctx *fiber.Ctx) error
	SetViewport(ctx *fiber.Ctx) error
	Pointer(ctx *fiber.Ctx) error
	SetInput(ctx *fiber.Ctx) error
	ChoosePrompt(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Post("/", c.Create)
	h.Get("/:id", c.Show)
	h.Delete("/:id", c.Delete)

	h.Post("/:id/filters/toggle", c.ToggleFilter)
	h.Delete("/:id/filters", c.ClearFilters)
	h.Put("/:id/search", c.SetSearch)

	p := h.Group("/:id/panel")
	p.Post("/open", c.OpenPanel)
	p.Post("/close", c.ClosePanel)
	p.Post("/expand", c.ToggleExpand)
	p.Put("/viewport", c.SetViewport)
	p.Post("/pointer", c.Pointer)
	p.Put("/input", c.SetInput)
	p.Post("/prompts/:index", c.ChoosePrompt)
	p.Post("/messages", c.Submit)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Create(ctx.UserContext())
	if err != nil {
		return translateError(err)
	}
	resp := serverutils.SuccessResponse("Session created", res)
	resp.Code = fiber.StatusCreated
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	if err := c.sessionService.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return translateError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session deleted", nil))
}

func (c *sessionController) ToggleFilter(ctx *fiber.Ctx) error {
	var req dto.ToggleFilterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.sessionService.ToggleFilter(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Filter toggled", res))
}

func (c *sessionController) ClearFilters(ctx *fiber.Ctx) error {
	res, err := c.sessionService.ClearFilters(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Filters cleared", res))
}

func (c *sessionController) SetSearch(ctx *fiber.Ctx) error {
	var req dto.SetSearchRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.sessionService.SetSearch(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Search updated", res))
}

func (c *sessionController) panelResult(ctx *fiber.Ctx, res *dto.PanelActionResponse, err error) error {
	if err != nil {
		return translateError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *sessionController) OpenPanel(ctx *fiber.Ctx) error {
	res, err := c.sessionService.OpenPanel(ctx.UserContext(), ctx.Params("id"))
	return c.panelResult(ctx, res, err)
}

func (c *sessionController) ClosePanel(ctx *fiber.Ctx) error {
	res, err := c.sessionService.ClosePanel(ctx.UserContext(), ctx.Params("id"))
	return c.panelResult(ctx, res, err)
}

func (c *sessionController) ToggleExpand(ctx *fiber.Ctx) error {
	res, err := c.sessionService.ToggleExpand(ctx.UserContext(), ctx.Params("id"))
	return c.panelResult(ctx, res, err)
}

func (c *sessionController) SetViewport(ctx *fiber.Ctx) error {
	var req dto.ViewportRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.sessionService.SetViewport(ctx.UserContext(), ctx.Params("id"), &req)
	return c.panelResult(ctx, res, err)
}

func (c *sessionController) Pointer(ctx *fiber.Ctx) error {
	var req dto.PointerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.sessionService.Pointer(ctx.UserContext(), ctx.Params("id"), &req)
	return c.panelResult(ctx, res, err)
}

func (c *sessionController) SetInput(ctx *fiber.Ctx) error {
	var req dto.SetInputRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.sessionService.SetInput(ctx.UserContext(), ctx.Params("id"), &req)
	return c.panelResult(ctx, res, err)
}

func (c *sessionController) ChoosePrompt(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return serverutils.NewBadRequestError("Prompt index must be an integer", err)
	}
	res, err := c.sessionService.ChoosePrompt(ctx.UserContext(), ctx.Params("id"), index)
	return c.panelResult(ctx, res, err)
}

// Submit accepts an empty body; a given text replaces the input first.
func (c *sessionController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitMessageRequest
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, &req); err != nil {
			return err
		}
	}
	res, err := c.sessionService.Submit(ctx.UserContext(), ctx.Params("id"), &req)
	return c.panelResult(ctx, res, err)
}
