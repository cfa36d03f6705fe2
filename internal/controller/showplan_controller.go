package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/service"
)

type IShowPlanController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type showPlanController struct {
	showPlanService service.IShowPlanService
}

func NewShowPlanController(showPlanService service.IShowPlanService) IShowPlanController {
	return &showPlanController{showPlanService: showPlanService}
}

func (c *showPlanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/showplan/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *showPlanController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)

	res, err := c.showPlanService.List(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list show plans", res))
}

func (c *showPlanController) Show(ctx *fiber.Ctx) error {
	res, err := c.showPlanService.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Conducteur introuvable"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show show plan", res))
}
