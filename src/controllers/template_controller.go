package controllers

import "github.com/gofiber/fiber/v2"

type TemplateController struct {
	templates TemplateSource
}

func NewTemplateController(templates TemplateSource) *TemplateController {
	return &TemplateController{templates: templates}
}

// ListTemplates godoc
// @Summary      List form templates
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.TemplateSummary
// @Router       /templates [get]
func (ctl *TemplateController) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(ctl.templates.List())
}

// GetTemplate godoc
// @Summary      Get a form template
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Template ID"
// @Success      200  {object}  models.FormTemplate
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id} [get]
func (ctl *TemplateController) GetTemplate(c *fiber.Ctx) error {
	tpl, err := ctl.templates.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(tpl)
}
