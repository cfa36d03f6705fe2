package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/service"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	ExportPdf(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{exportService: exportService}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("pdf", c.ExportPdf)
	h.Get("status", c.Status)
}

// ExportPdf streams the rendered document back as a download.
func (c *exportController) ExportPdf(ctx *fiber.Ctx) error {
	userId := localString(ctx, "user_id")
	userName := localString(ctx, "user_name")

	var req dto.ExportPdfRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.exportService.ExportPdf(ctx.Context(), userId, userName, &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return ctx.Send(res.Blob)
}

func (c *exportController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success export status",
		fiber.Map{"status": c.exportService.Status()}))
}
