package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/service"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{dashboardService: dashboardService}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
}

func (c *dashboardController) Show(ctx *fiber.Ctx) error {
	// The upstream call needs the caller's own token, forwarded as-is.
	token := strings.TrimPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer ")

	res, err := c.dashboardService.GetDashboard(ctx.Context(), token)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load dashboard", res))
}
