package controller

import (
	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type messageController struct {
	messageService service.IMessageService
}

func NewMessageController(messageService service.IMessageService) IMessageController {
	return &messageController{
		messageService: messageService,
	}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/message/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *messageController) Create(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	var req dto.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.messageService.Create(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create message", res))
}

func (c *messageController) Show(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.messageService.Get(ctx.Context(), sessionId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show message", res))
}

func (c *messageController) List(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.messageService.List(ctx.Context(), sessionId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list messages", res))
}

func (c *messageController) Delete(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	err := c.messageService.Delete(ctx.Context(), sessionId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete message", nil))
}
