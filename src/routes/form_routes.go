package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormCraft/src/controllers"
	"Backend-FormCraft/src/middleware"
)

func formRoutes(router fiber.Router, ctl *controllers.FormController, share *controllers.ShareController) {
	forms := router.Group("/forms")

	// public
	forms.Get("/:id/public", ctl.GetPublicForm)

	forms.Post("/", middleware.AuthJWT, ctl.CreateForm)
	forms.Post("/from-template/:templateId", middleware.AuthJWT, ctl.CreateFromTemplate)
	forms.Get("/", middleware.AuthJWT, ctl.ListForms)
	forms.Get("/:id/share", middleware.AuthJWT, share.GetShareLink)
	forms.Get("/:id/qrcode", middleware.AuthJWT, share.GetShareQRCode)
	forms.Get("/:id", middleware.AuthJWT, ctl.GetForm)
	forms.Put("/:id", middleware.AuthJWT, ctl.UpdateForm)
	forms.Patch("/:id", middleware.AuthJWT, ctl.UpdateForm)
	forms.Delete("/:id", middleware.AuthJWT, ctl.DeleteForm)
}

func templateRoutes(router fiber.Router, ctl *controllers.TemplateController) {
	templates := router.Group("/templates", middleware.AuthJWT)

	templates.Get("/", ctl.ListTemplates)
	templates.Get("/:id", ctl.GetTemplate)
}
