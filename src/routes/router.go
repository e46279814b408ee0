package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Backend-FormCraft/src/controllers"
)

// Controllers is everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Form      *controllers.FormController
	Share     *controllers.ShareController
	Template  *controllers.TemplateController
	Response  *controllers.ResponseController
	Analytics *controllers.AnalyticsController
	Upload    *controllers.UploadController
}

func InitRoutes(app *fiber.App, ctl Controllers, uploadDir string) {
	api := app.Group("/api")

	authRoutes(api, ctl.Auth)
	formRoutes(api, ctl.Form, ctl.Share)
	templateRoutes(api, ctl.Template)
	responseRoutes(api, ctl.Response)
	analyticsRoutes(api, ctl.Analytics)
	uploadRoutes(api, ctl.Upload)

	if uploadDir != "" {
		app.Static("/uploads", uploadDir)
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
