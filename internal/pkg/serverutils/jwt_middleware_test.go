package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AdminMiddleware, func(ctx *fiber.Ctx) error {
		id, err := CurrentUserID(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		return ctx.SendString(id.String())
	})
	return app
}

func TestAdminMiddlewareAcceptsAdminToken(t *testing.T) {
	userId := uuid.New()
	token, err := GenerateAdminToken(userId, "admin@example.com", 3600)
	assert.NoError(t, err)

	app := newProtectedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminMiddlewareRejectsGarbageToken(t *testing.T) {
	app := newProtectedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminMiddlewareRejectsNonAdminRole(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "user",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	assert.NoError(t, err)

	app := newProtectedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDevAdminMiddlewareInjectsIdentity(t *testing.T) {
	devId := uuid.New()

	app := fiber.New()
	app.Get("/dev", DevAdminMiddleware(devId), func(ctx *fiber.Ctx) error {
		id, err := CurrentUserID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, devId, id)
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dev", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
