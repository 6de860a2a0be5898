// file: src/routes/submission_routes.go
package routes

import (
	"onboarding-logger/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func submissionRoutes(router fiber.Router, ctrl *controllers.SubmissionController) {
	router.Add(fiber.MethodPost, "/submit", ctrl.SubmitResponses)
}
