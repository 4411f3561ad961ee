package controller

import (
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaxonomyController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowFlat(ctx *fiber.Ctx) error
}

type taxonomyController struct {
	taxonomyService service.ITaxonomyService
}

func NewTaxonomyController(taxonomyService service.ITaxonomyService) ITaxonomyController {
	return &taxonomyController{
		taxonomyService: taxonomyService,
	}
}

func (c *taxonomyController) RegisterRoutes(r fiber.Router) {
	// Taxonomy catalog is read-only and session independent.
	h := r.Group("/taxonomy/v1")
	h.Get("", c.List)
	h.Get(":name", c.Show)
	h.Get(":name/flat", c.ShowFlat)
}

func (c *taxonomyController) List(ctx *fiber.Ctx) error {
	res := c.taxonomyService.ListTaxonomies(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success list taxonomies", res))
}

func (c *taxonomyController) Show(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	res, err := c.taxonomyService.GetGrouped(ctx.Context(), name)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show taxonomy", res))
}

func (c *taxonomyController) ShowFlat(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	res, err := c.taxonomyService.GetFlat(ctx.Context(), name)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show taxonomy entries", res))
}
