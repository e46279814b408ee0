package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/models"
)

type FormService interface {
	Create(ctx context.Context, owner primitive.ObjectID, in *models.FormPayload) (*models.Form, error)
	CreateFromTemplate(ctx context.Context, owner primitive.ObjectID, tpl *models.FormTemplate) (*models.Form, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Form, error)
	GetOwned(ctx context.Context, owner, id primitive.ObjectID) (*models.Form, error)
	GetPublic(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	Update(ctx context.Context, owner, id primitive.ObjectID, in *models.FormPayload) (*models.Form, error)
	Delete(ctx context.Context, owner, id primitive.ObjectID) error
}

type TemplateSource interface {
	List() []models.TemplateSummary
	Get(id string) (*models.FormTemplate, error)
}

type FormController struct {
	forms     FormService
	templates TemplateSource
}

func NewFormController(forms FormService, templates TemplateSource) *FormController {
	return &FormController{forms: forms, templates: templates}
}

// CreateForm godoc
// @Summary      Create a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.FormPayload true "Form"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Router       /forms [post]
func (ctl *FormController) CreateForm(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	var in models.FormPayload
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	form, err := ctl.forms.Create(c.UserContext(), owner, &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// CreateFromTemplate godoc
// @Summary      Create a form from a template
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        templateId path string true "Template ID"
// @Success      201  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/from-template/{templateId} [post]
func (ctl *FormController) CreateFromTemplate(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	tpl, err := ctl.templates.Get(c.Params("templateId"))
	if err != nil {
		return err
	}
	form, err := ctl.forms.CreateFromTemplate(c.UserContext(), owner, tpl)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// ListForms godoc
// @Summary      List my forms
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Form
// @Router       /forms [get]
func (ctl *FormController) ListForms(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	forms, err := ctl.forms.ListByOwner(c.UserContext(), owner)
	if err != nil {
		return err
	}
	return c.JSON(forms)
}

// GetForm godoc
// @Summary      Get one of my forms
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func (ctl *FormController) GetForm(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	form, err := ctl.forms.GetOwned(c.UserContext(), owner, id)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

// GetPublicForm godoc
// @Summary      Get a published form
// @Description  Returns the form without its owner while it is public.
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.PublicForm
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/public [get]
func (ctl *FormController) GetPublicForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	form, err := ctl.forms.GetPublic(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(form.Public())
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Only the fields present in the body are changed.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Form ID"
// @Param        body body models.FormPayload true "Changes"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func (ctl *FormController) UpdateForm(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in models.FormPayload
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	form, err := ctl.forms.Update(c.UserContext(), owner, id, &in)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

// DeleteForm godoc
// @Summary      Delete a form with its responses and views
// @Tags         forms
// @Security     BearerAuth
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func (ctl *FormController) DeleteForm(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.forms.Delete(c.UserContext(), owner, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Form deleted"})
}
