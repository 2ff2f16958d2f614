package controller

import (
	"fmt"

	"octobot-be/internal/dto"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	MessageCounts(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	ListClientNotes(ctx *fiber.Ctx) error
	CreateClientNote(ctx *fiber.Ctx) error
	DeleteClientNote(ctx *fiber.Ctx) error
	AnalyticsOverview(ctx *fiber.Ctx) error
}

// sessionController carries the admin-side session views plus the
// client-note and analytics endpoints that hang off the same screens.
type sessionController struct {
	sessionService   service.ISessionService
	noteService      service.INoteService
	analyticsService service.IAnalyticsService
	adminMiddleware  fiber.Handler
}

func NewSessionController(
	sessionService service.ISessionService,
	noteService service.INoteService,
	analyticsService service.IAnalyticsService,
	adminMiddleware fiber.Handler,
) ISessionController {
	return &sessionController{
		sessionService:   sessionService,
		noteService:      noteService,
		analyticsService: analyticsService,
		adminMiddleware:  adminMiddleware,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(c.adminMiddleware)

	h.Get("sessions", c.List)
	h.Get("sessions/message-counts", c.MessageCounts)
	h.Get("sessions/:id", c.Detail)
	h.Put("sessions/:id", c.Update)
	h.Get("sessions/:id/export", c.Export)

	h.Get("client-notes", c.ListClientNotes)
	h.Post("client-notes", c.CreateClientNote)
	h.Delete("client-notes/:id", c.DeleteClientNote)

	h.Get("analytics/overview", c.AnalyticsOverview)
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	var botId, testerId *uuid.UUID
	if raw := ctx.Query("bot_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid bot_id filter"))
		}
		botId = &id
	}
	if raw := ctx.Query("client_tester_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid client_tester_id filter"))
		}
		testerId = &id
	}

	res, err := c.sessionService.ListSessions(ctx.Context(), botId, testerId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session list", res))
}

func (c *sessionController) Detail(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	res, err := c.sessionService.GetSessionDetail(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session detail", res))
}

func (c *sessionController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.sessionService.UpdateSession(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session updated", fiber.Map{"id": id}))
}

func (c *sessionController) MessageCounts(ctx *fiber.Ctx) error {
	res, err := c.sessionService.MessageCounts(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Message counts", res))
}

// Export streams the transcript as a file download.
func (c *sessionController) Export(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	format := ctx.Query("format", "txt")

	res, err := c.sessionService.ExportSession(ctx.Context(), id, format)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.FileName))
	return ctx.SendString(res.Content)
}

func (c *sessionController) ListClientNotes(ctx *fiber.Ctx) error {
	testerId, err := uuid.Parse(ctx.Query("client_tester_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid client_tester_id"))
	}

	res, err := c.noteService.ListClientNotes(ctx.Context(), testerId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Client notes", res))
}

func (c *sessionController) CreateClientNote(ctx *fiber.Ctx) error {
	actorId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.CreateClientNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.noteService.CreateClientNote(ctx.Context(), &req, actorId)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Client note created", res))
}

func (c *sessionController) DeleteClientNote(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid note id"))
	}

	if err := c.noteService.DeleteClientNote(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Client note deleted", fiber.Map{"id": id}))
}

func (c *sessionController) AnalyticsOverview(ctx *fiber.Ctx) error {
	res, err := c.analyticsService.Overview(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Analytics overview", res))
}
