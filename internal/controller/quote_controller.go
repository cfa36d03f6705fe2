package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/service"
)

type IQuoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ByShowPlan(ctx *fiber.Ctx) error
	BySegment(ctx *fiber.Ctx) error
	SavedFilters(ctx *fiber.Ctx) error
	UploadAudio(ctx *fiber.Ctx) error
}

type quoteController struct {
	quoteService  service.IQuoteService
	feedService   service.IQuoteFeedService
	uploadService service.IUploadService
}

func NewQuoteController(
	quoteService service.IQuoteService,
	feedService service.IQuoteFeedService,
	uploadService service.IUploadService,
) IQuoteController {
	return &quoteController{
		quoteService:  quoteService,
		feedService:   feedService,
		uploadService: uploadService,
	}
}

func (c *quoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quote/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("filters", c.SavedFilters)
	h.Post("audio", c.UploadAudio)
	h.Get("showplan/:id", c.ByShowPlan)
	h.Get("segment/:id", c.BySegment)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *quoteController) Create(ctx *fiber.Ctx) error {
	userId := localString(ctx, "user_id")
	userName := localString(ctx, "user_name")

	var req dto.CreateQuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quoteService.Create(ctx.Context(), userId, userName, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create quote", res))
}

func (c *quoteController) List(ctx *fiber.Ctx) error {
	var filters dto.QuoteFilters
	if err := ctx.QueryParser(&filters); err != nil {
		return err
	}

	res, err := c.quoteService.List(ctx.Context(), filters)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list quotes", res))
}

func (c *quoteController) Show(ctx *fiber.Ctx) error {
	res, err := c.quoteService.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Citation introuvable"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show quote", res))
}

func (c *quoteController) Update(ctx *fiber.Ctx) error {
	userId := localString(ctx, "user_id")

	var req dto.UpdateQuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.quoteService.Update(ctx.Context(), userId, ctx.Params("id"), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update quote", nil))
}

func (c *quoteController) Delete(ctx *fiber.Ctx) error {
	userId := localString(ctx, "user_id")

	if err := c.quoteService.Delete(ctx.Context(), userId, ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete quote", nil))
}

func (c *quoteController) ByShowPlan(ctx *fiber.Ctx) error {
	res, err := c.quoteService.GetQuotesByShowPlan(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list show plan quotes", res))
}

func (c *quoteController) BySegment(ctx *fiber.Ctx) error {
	res, err := c.quoteService.GetQuotesBySegment(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list segment quotes", res))
}

// SavedFilters returns the filter set persisted for this user, so a client
// can restore its last view before opening the feed.
func (c *quoteController) SavedFilters(ctx *fiber.Ctx) error {
	userId := localString(ctx, "user_id")

	res, err := c.feedService.LoadSavedFilters(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if res == nil {
		res = &dto.QuoteFilters{}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load saved filters", res))
}

func (c *quoteController) UploadAudio(ctx *fiber.Ctx) error {
	userId := localString(ctx, "user_id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Fichier audio manquant"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	url, err := c.uploadService.UploadQuoteAudio(ctx.Context(), userId,
		data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload audio", fiber.Map{"url": url}))
}

func localString(ctx *fiber.Ctx, key string) string {
	if v, ok := ctx.Locals(key).(string); ok {
		return v
	}
	return ""
}
