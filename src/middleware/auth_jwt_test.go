package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/utils"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthJWT, func(c *fiber.Ctx) error {
		id, err := UserID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(id.Hex())
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWT(t *testing.T) {
	app := newApp()
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(userID.Hex(), "a@example.com")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "Token "+token))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "Bearer garbage"))
	assert.Equal(t, fiber.StatusOK, call(t, app, "Bearer "+token))
}

func TestAuthJWTRejectsForeignSignature(t *testing.T) {
	claims := utils.JWTClaims{UserID: primitive.NewObjectID().Hex()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("someone-else"))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, call(t, newApp(), "Bearer "+forged))
}

func TestUserIDWithoutLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := UserID(c)
		assert.ErrorIs(t, err, ErrNoUser)
		return nil
	})
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
}
