package routes

import (
	"onboarding-logger/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func eventRoutes(router fiber.Router, ctrl *controllers.EventController) {
	router.Add(fiber.MethodPost, "/log-event", ctrl.LogEvent)
}
