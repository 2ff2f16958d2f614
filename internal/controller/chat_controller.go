package controller

import (
	"errors"

	"octobot-be/internal/dto"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/service"
	"octobot-be/pkg/linkpreview"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Bootstrap(ctx *fiber.Ctx) error
	NewSession(ctx *fiber.Ctx) error
	Heartbeat(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	EditMessage(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
	SaveNote(ctx *fiber.Ctx) error
	GetNote(ctx *fiber.Ctx) error
	SubmitReview(ctx *fiber.Ctx) error
	Banners(ctx *fiber.Ctx) error
	LinkPreview(ctx *fiber.Ctx) error
}

// chatController is the public surface reached through share links.
// Every handler authorizes by share token, never by JWT.
type chatController struct {
	sessionService service.ISessionService
	messageService service.IMessageService
	bannerService  service.IBannerService
	previewFetcher *linkpreview.Fetcher
}

func NewChatController(
	sessionService service.ISessionService,
	messageService service.IMessageService,
	bannerService service.IBannerService,
	previewFetcher *linkpreview.Fetcher,
) IChatController {
	return &chatController{
		sessionService: sessionService,
		messageService: messageService,
		bannerService:  bannerService,
		previewFetcher: previewFetcher,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")

	h.Post("heartbeat", c.Heartbeat)
	h.Post("messages", c.SendMessage)
	h.Put("messages", c.EditMessage)
	h.Post("messages/feedback", c.SubmitFeedback)
	h.Post("notes", c.SaveNote)
	h.Post("reviews", c.SubmitReview)
	h.Get("link-preview", c.LinkPreview)

	h.Get(":shareToken/session", c.Bootstrap)
	h.Post(":shareToken/session/new", c.NewSession)
	h.Get(":shareToken/sessions/:sessionId/note", c.GetNote)
	h.Get(":shareToken/banners", c.Banners)
}

func chatErrorStatus(err error) int {
	if errors.Is(err, service.ErrInvalidShareLink) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (c *chatController) Bootstrap(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetOrCreateSession(ctx.Context(), ctx.Params("shareToken"))
	if err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat session", res))
}

func (c *chatController) NewSession(ctx *fiber.Ctx) error {
	res, err := c.sessionService.CreateNewSession(ctx.Context(), ctx.Params("shareToken"))
	if err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("New chat session", res))
}

func (c *chatController) Heartbeat(ctx *fiber.Ctx) error {
	var req dto.HeartbeatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.sessionService.Heartbeat(ctx.Context(), &req); err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Heartbeat recorded", fiber.Map{"session_id": req.SessionId}))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.messageService.SendMessage(ctx.Context(), &req)
	if err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatController) EditMessage(ctx *fiber.Ctx) error {
	var req dto.EditMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.messageService.EditMessage(ctx.Context(), &req); err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Message edited", fiber.Map{"message_id": req.MessageId}))
}

func (c *chatController) SubmitFeedback(ctx *fiber.Ctx) error {
	var req dto.MessageFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.messageService.SubmitFeedback(ctx.Context(), &req)
	if err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feedback recorded", res))
}

func (c *chatController) SaveNote(ctx *fiber.Ctx) error {
	var req dto.SaveSessionNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.sessionService.SaveSessionNote(ctx.Context(), &req)
	if err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Note saved", res))
}

func (c *chatController) GetNote(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	res, err := c.sessionService.GetSessionNote(ctx.Context(), sessionId, ctx.Params("shareToken"))
	if err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session note", res))
}

func (c *chatController) SubmitReview(ctx *fiber.Ctx) error {
	var req dto.SubmitReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.sessionService.SubmitReview(ctx.Context(), &req); err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Review submitted", fiber.Map{"session_id": req.SessionId}))
}

func (c *chatController) Banners(ctx *fiber.Ctx) error {
	res, err := c.bannerService.ActiveBannersForBot(ctx.Context(), ctx.Params("shareToken"))
	if err != nil {
		status := chatErrorStatus(err)
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Active banners", res))
}

// LinkPreview never fails hard: the fetcher degrades to domain + favicon
// when the target cannot be scraped.
func (c *chatController) LinkPreview(ctx *fiber.Ctx) error {
	rawURL := ctx.Query("url")
	if rawURL == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing url parameter"))
	}

	res, err := c.previewFetcher.Fetch(ctx.Context(), rawURL)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Link preview", res))
}
