package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/utils"
)

func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	revoked, err := utils.IsTokenBlacklisted(c.UserContext(), tokenStr)
	if err != nil {
		logger.Warnf("⚠️ blacklist lookup failed: %v", err)
	}
	if revoked {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has been revoked"})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("token", tokenStr)
	c.Locals("claims", claims)

	return c.Next()
}

var ErrNoUser = errors.New("no authenticated user")

// UserID returns the caller set by AuthJWT.
func UserID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("userId").(string)
	if raw == "" {
		return primitive.NilObjectID, ErrNoUser
	}
	return primitive.ObjectIDFromHex(raw)
}
