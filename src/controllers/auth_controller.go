package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Me(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Logout(ctx context.Context, token string, remaining time.Duration) error
}

type AuthController struct {
	auth AuthService
}

func NewAuthController(auth AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RegisterRequest true "Account"
// @Success      201  {object}  models.AuthResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	res, err := ctl.auth.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login godoc
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.AuthResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	res, err := ctl.auth.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	id, err := currentUser(c)
	if err != nil {
		return err
	}
	user, err := ctl.auth.Me(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// Logout godoc
// @Summary      Revoke the current token
// @Tags         auth
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	claims, _ := c.Locals("claims").(*utils.JWTClaims)
	var remaining time.Duration
	if claims != nil {
		remaining = claims.TimeLeft()
	}
	if err := ctl.auth.Logout(c.UserContext(), token, remaining); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
