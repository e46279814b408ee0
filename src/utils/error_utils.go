package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Backend-FormCraft/src/models"
)

// Validate checks request DTOs by their validate tags.
var Validate = validator.New()

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleValidation answers 400 listing each field problem, whether it came
// from struct tags or from schema checks.
func HandleValidation(c *fiber.Ctx, err error) error {
	var verrs models.ValidationErrors
	var tagErrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
	case errors.As(err, &tagErrs):
		for _, fe := range tagErrs {
			verrs.Add(lowerFirst(fe.Field()), "failed on "+fe.Tag())
		}
	default:
		return HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: "validation failed",
		Errors:  verrs,
	})
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
