package routes

import (
	"onboarding-logger/src/controllers"
	"onboarding-logger/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func exportRoutes(router fiber.Router, ctrl *controllers.ExportController, d Deps) {
	denied := func() { d.Metrics.ExportRequests.WithLabelValues("unauthorized").Inc() }
	router.Add(fiber.MethodGet, "/export", middleware.ExportToken(d.ExportToken, denied), ctrl.ExportEvents)
}
