package controller

import (
	"octobot-be/internal/dto"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITesterController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	RecycleBin(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Purge(ctx *fiber.Ctx) error
}

type testerController struct {
	testerService   service.ITesterService
	adminMiddleware fiber.Handler
}

func NewTesterController(testerService service.ITesterService, adminMiddleware fiber.Handler) ITesterController {
	return &testerController{
		testerService:   testerService,
		adminMiddleware: adminMiddleware,
	}
}

func (c *testerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/testers")
	h.Use(c.adminMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("recycle-bin", c.RecycleBin)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/restore", c.Restore)
	h.Delete(":id/purge", c.Purge)
}

func (c *testerController) List(ctx *fiber.Ctx) error {
	var botId *uuid.UUID
	if raw := ctx.Query("bot_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid bot_id filter"))
		}
		botId = &id
	}

	res, err := c.testerService.ListTesters(ctx.Context(), botId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Tester list", res))
}

func (c *testerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTesterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.testerService.CreateTester(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Tester created", res))
}

func (c *testerController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid tester id"))
	}

	var req dto.UpdateTesterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.testerService.UpdateTester(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Tester updated", res))
}

func (c *testerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid tester id"))
	}

	if err := c.testerService.DeleteTester(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Tester moved to recycle bin", fiber.Map{"id": id}))
}

func (c *testerController) RecycleBin(ctx *fiber.Ctx) error {
	res, err := c.testerService.ListDeletedTesters(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Recycle bin", res))
}

func (c *testerController) Restore(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid tester id"))
	}

	if err := c.testerService.RestoreTester(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Tester restored", fiber.Map{"id": id}))
}

func (c *testerController) Purge(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid tester id"))
	}

	if err := c.testerService.PurgeTester(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Tester permanently deleted", fiber.Map{"id": id}))
}
