package serverutils

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

// AdminMiddleware authenticates a Bearer token and requires the admin
// role claim. The resolved user id is stored in locals for handlers.
func AdminMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})

	if err != nil || token == nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
	}

	role, ok := claims["role"].(string)
	if !ok {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Role missing"))
	}
	if role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
	}

	if userId, exists := claims["user_id"]; exists {
		ctx.Locals("user_id", userId)
	}

	return ctx.Next()
}

// DevAdminMiddleware grants admin access without a token, acting as the
// given user. Wired in bootstrap only when DEV_AUTH_BYPASS=true; never
// in production builds of the container.
func DevAdminMiddleware(devUserId uuid.UUID) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("user_id", devUserId.String())
		return ctx.Next()
	}
}

// CurrentUserID reads the authenticated user id set by the admin
// middleware.
func CurrentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw := ctx.Locals("user_id")
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("no authenticated user in context")
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in context: %w", err)
	}
	return id, nil
}

// GenerateAdminToken signs a JWT carrying the admin's identity claims.
func GenerateAdminToken(userId uuid.UUID, email string, expiresInSeconds int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"email":   email,
		"role":    "admin",
	}
	if expiresInSeconds > 0 {
		claims["exp"] = jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}
