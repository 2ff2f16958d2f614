package controller

import (
	"octobot-be/internal/dto"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITeamController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListMembers(ctx *fiber.Ctx) error
	ListAllMembers(ctx *fiber.Ctx) error
	AddMember(ctx *fiber.Ctx) error
	RemoveMember(ctx *fiber.Ctx) error
}

type teamController struct {
	teamService     service.ITeamService
	adminMiddleware fiber.Handler
}

func NewTeamController(teamService service.ITeamService, adminMiddleware fiber.Handler) ITeamController {
	return &teamController{
		teamService:     teamService,
		adminMiddleware: adminMiddleware,
	}
}

func (c *teamController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/teams")
	h.Use(c.adminMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("members", c.ListAllMembers)
	h.Delete("members/:id", c.RemoveMember)
	h.Get(":id/members", c.ListMembers)
	h.Post(":id/members", c.AddMember)
	h.Delete(":id", c.Delete)
}

func (c *teamController) List(ctx *fiber.Ctx) error {
	res, err := c.teamService.ListTeams(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Team list", res))
}

func (c *teamController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.teamService.CreateTeam(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Team created", res))
}

func (c *teamController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid team id"))
	}

	if err := c.teamService.DeleteTeam(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Team deleted", fiber.Map{"id": id}))
}

func (c *teamController) ListMembers(ctx *fiber.Ctx) error {
	teamId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid team id"))
	}

	res, err := c.teamService.ListMembers(ctx.Context(), teamId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Team members", res))
}

func (c *teamController) ListAllMembers(ctx *fiber.Ctx) error {
	res, err := c.teamService.ListAllMembers(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("All team members", res))
}

func (c *teamController) AddMember(ctx *fiber.Ctx) error {
	teamId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid team id"))
	}

	var req dto.AddTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.TeamId = teamId

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.teamService.AddMember(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Member added", res))
}

func (c *teamController) RemoveMember(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid member id"))
	}

	if err := c.teamService.RemoveMember(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Member removed", fiber.Map{"id": id}))
}
