package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormCraft/src/controllers"
	"Backend-FormCraft/src/middleware"
)

func analyticsRoutes(router fiber.Router, ctl *controllers.AnalyticsController) {
	a := router.Group("/analytics")

	a.Post("/forms/:formId/view", ctl.RecordView)

	a.Get("/overview", middleware.AuthJWT, ctl.GetOverview)
	a.Get("/forms/:formId/analytics", middleware.AuthJWT, ctl.GetFormAnalytics)
	a.Get("/forms/:formId/analytics/field/:fieldId", middleware.AuthJWT, ctl.GetFieldAnalytics)
	a.Get("/forms/:formId/analytics/responses", middleware.AuthJWT, ctl.GetFormResponsesPage)
}
