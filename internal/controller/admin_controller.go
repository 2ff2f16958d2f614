package controller

import (
	"fmt"
	"path/filepath"

	"octobot-be/internal/dto"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/service"
	ws "octobot-be/internal/websocket"
	"octobot-be/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListAdmins(ctx *fiber.Ctx) error
	CreateAdmin(ctx *fiber.Ctx) error
	DeleteAdmin(ctx *fiber.Ctx) error
	UpdateAdminPassword(ctx *fiber.Ctx) error
	UploadImage(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService    service.IAdminService
	hub             *ws.Hub
	uploadDir       string
	baseURL         string
	adminMiddleware fiber.Handler
}

func NewAdminController(adminService service.IAdminService, hub *ws.Hub, uploadDir, baseURL string, adminMiddleware fiber.Handler) IAdminController {
	return &adminController{
		adminService:    adminService,
		hub:             hub,
		uploadDir:       uploadDir,
		baseURL:         baseURL,
		adminMiddleware: adminMiddleware,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(c.adminMiddleware)

	h.Get("admins", c.ListAdmins)
	h.Post("admins", c.CreateAdmin)
	h.Delete("admins/:id", c.DeleteAdmin)
	h.Put("admins/:id/password", c.UpdateAdminPassword)

	h.Post("uploads", c.UploadImage)

	// Live dashboard stream. The upgrade check must run before the
	// websocket handler takes over the connection.
	h.Use("ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	h.Get("ws", websocket.New(func(conn *websocket.Conn) {
		adminId, _ := uuid.Parse(fmt.Sprint(conn.Locals("user_id")))
		ws.ServeWs(c.hub, conn, adminId)
	}))
}

func (c *adminController) ListAdmins(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListAdmins(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin list", res))
}

func (c *adminController) CreateAdmin(ctx *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.adminService.CreateAdmin(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "email already registered" {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Admin created", res))
}

func (c *adminController) DeleteAdmin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid admin id"))
	}

	actorId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	if err := c.adminService.DeleteAdmin(ctx.Context(), id, actorId); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Admin deleted", fiber.Map{"id": id}))
}

func (c *adminController) UpdateAdminPassword(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid admin id"))
	}

	var req dto.UpdateAdminPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.adminService.UpdateAdminPassword(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Password updated", fiber.Map{"id": id}))
}

// UploadImage stores a brand logo under the upload dir with a random
// prefix so client-chosen names can't collide or traverse paths.
func (c *adminController) UploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing file"))
	}

	prefix, err := token.Generate(8)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to name file"))
	}

	fileName := fmt.Sprintf("%s-%s", prefix, filepath.Base(file.Filename))
	dest := filepath.Join(c.uploadDir, fileName)

	if err := ctx.SaveFile(file, dest); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to save file"))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("File uploaded", dto.UploadImageResponse{
		Url:      fmt.Sprintf("%s/uploads/%s", c.baseURL, fileName),
		FileName: fileName,
	}))
}
