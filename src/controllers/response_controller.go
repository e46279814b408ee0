package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/models"
)

type ResponseService interface {
	Submit(ctx context.Context, formID primitive.ObjectID, req *models.SubmitResponseRequest, meta models.RequestMeta) (*models.Response, error)
	ListForForm(ctx context.Context, owner, formID primitive.ObjectID) (*models.Form, []models.Response, error)
	Delete(ctx context.Context, owner, responseID primitive.ObjectID) error
}

type ResponseController struct {
	responses ResponseService
}

func NewResponseController(responses ResponseService) *ResponseController {
	return &ResponseController{responses: responses}
}

// SubmitResponse godoc
// @Summary      Submit answers to a public form
// @Description  Answers for unknown fields are dropped. Hidden fields are never required.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        formId  path  string  true  "Form ID"
// @Param        body    body  models.SubmitResponseRequest  true  "Answers"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /responses/{formId} [post]
func (ctl *ResponseController) SubmitResponse(c *fiber.Ctx) error {
	formID, err := parseID(c, "formId")
	if err != nil {
		return err
	}
	var in models.SubmitResponseRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	resp, err := ctl.responses.Submit(c.UserContext(), formID, &in, requestMeta(c))
	if err != nil {
		return err
	}
	logger.Debugf("[responses] IN form=%s answers=%d", formID.Hex(), len(resp.Answers))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetFormResponses godoc
// @Summary      List responses of one of my forms
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        formId  path  string  true  "Form ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /responses/form/{formId} [get]
func (ctl *ResponseController) GetFormResponses(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	formID, err := parseID(c, "formId")
	if err != nil {
		return err
	}
	form, list, err := ctl.responses.ListForForm(c.UserContext(), owner, formID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"form": form, "responses": list})
}

// DeleteResponse godoc
// @Summary      Delete a response
// @Tags         responses
// @Security     BearerAuth
// @Param        id   path  string  true  "Response ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /responses/{id} [delete]
func (ctl *ResponseController) DeleteResponse(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.responses.Delete(c.UserContext(), owner, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Response deleted"})
}
