package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormCraft/src/controllers"
	"Backend-FormCraft/src/middleware"
)

func responseRoutes(router fiber.Router, ctl *controllers.ResponseController) {
	responses := router.Group("/responses")

	responses.Get("/form/:formId", middleware.AuthJWT, ctl.GetFormResponses) // GET /responses/form/:formId
	responses.Post("/:formId", ctl.SubmitResponse)                           // public submission
	responses.Delete("/:id", middleware.AuthJWT, ctl.DeleteResponse)
}

func uploadRoutes(router fiber.Router, ctl *controllers.UploadController) {
	router.Post("/uploads", ctl.Upload)
}
