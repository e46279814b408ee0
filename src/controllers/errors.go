package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/middleware"
	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/analytics"
	"Backend-FormCraft/src/services/auth"
	"Backend-FormCraft/src/services/forms"
	"Backend-FormCraft/src/services/responses"
	"Backend-FormCraft/src/services/templates"
	"Backend-FormCraft/src/services/uploads"
	"Backend-FormCraft/src/utils"
)

// handleServiceError maps service sentinels to HTTP statuses. Anything
// unknown is logged and answered with 500.
func handleServiceError(c *fiber.Ctx, err error) error {
	var verrs models.ValidationErrors
	var tagErrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), errors.As(err, &tagErrs):
		return utils.HandleValidation(c, err)
	case errors.Is(err, forms.ErrFormNotFound),
		errors.Is(err, responses.ErrFormUnavailable),
		errors.Is(err, responses.ErrResponseNotFound),
		errors.Is(err, analytics.ErrFieldNotFound),
		errors.Is(err, templates.ErrTemplateNotFound),
		errors.Is(err, auth.ErrUserNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, responses.ErrDuplicateSubmission),
		errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, auth.ErrNameTaken):
		return utils.HandleError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, analytics.ErrInvalidGroupBy),
		errors.Is(err, uploads.ErrEmptyFile):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, uploads.ErrFileTooLarge):
		return utils.HandleError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	}
	logger.Errorf("❌ %s %s: %v", c.Method(), c.Path(), err)
	return utils.HandleError(c, fiber.StatusInternalServerError, "internal server error")
}

// ErrorHandler renders errors returned from handlers, including
// *fiber.Error, as models.ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.HandleError(c, fe.Code, fe.Message)
	}
	return handleServiceError(c, err)
}

// parseID returns a 400 *fiber.Error for a malformed ObjectID.
func parseID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "Invalid "+param)
	}
	return id, nil
}

func currentUser(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, err := middleware.UserID(c)
	if err != nil {
		return primitive.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

// bindJSON parses and tag-validates the request body into dst.
func bindJSON(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

func requestMeta(c *fiber.Ctx) models.RequestMeta {
	return models.RequestMeta{IP: c.IP(), UserAgent: c.Get(fiber.HeaderUserAgent)}
}
