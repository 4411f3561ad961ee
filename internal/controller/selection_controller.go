package controller

import (
	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISelectionController interface {
	RegisterRoutes(r fiber.Router)
	ShowAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Unselect(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
}

type selectionController struct {
	selectionService service.ISelectionService
}

func NewSelectionController(selectionService service.ISelectionService) ISelectionController {
	return &selectionController{
		selectionService: selectionService,
	}
}

func (c *selectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/selection/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.ShowAll)
	h.Get(":taxonomy", c.Show)
	h.Get(":taxonomy/view", c.View)
	h.Post(":taxonomy/items", c.Select)
	h.Delete(":taxonomy/items", c.Unselect)
}

func (c *selectionController) ShowAll(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	res := c.selectionService.GetAll(ctx.Context(), sessionId)

	return ctx.JSON(serverutils.SuccessResponse("Success show selections", res))
}

func (c *selectionController) Show(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	taxonomy := ctx.Params("taxonomy")

	res, err := c.selectionService.Get(ctx.Context(), sessionId, taxonomy)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show selection", res))
}

func (c *selectionController) Select(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	taxonomy := ctx.Params("taxonomy")

	var req dto.SelectItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.selectionService.Select(ctx.Context(), sessionId, taxonomy, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select item", res))
}

func (c *selectionController) Unselect(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	taxonomy := ctx.Params("taxonomy")

	var req dto.UnselectItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.selectionService.Unselect(ctx.Context(), sessionId, taxonomy, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unselect item", res))
}

func (c *selectionController) View(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	taxonomy := ctx.Params("taxonomy")

	res, err := c.selectionService.View(ctx.Context(), sessionId, taxonomy)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render selection view", res))
}
