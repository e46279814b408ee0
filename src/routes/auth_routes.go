package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormCraft/src/controllers"
	"Backend-FormCraft/src/middleware"
)

func authRoutes(router fiber.Router, ctl *controllers.AuthController) {
	auth := router.Group("/auth")

	auth.Post("/register", ctl.Register)
	auth.Post("/login", ctl.Login)
	auth.Get("/me", middleware.AuthJWT, ctl.Me)
	auth.Post("/logout", middleware.AuthJWT, ctl.Logout)
}
