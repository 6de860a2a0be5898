package routes

import (
	"onboarding-logger/src/controllers"
	_ "onboarding-logger/src/docs"
	"onboarding-logger/src/metrics"
	"onboarding-logger/src/middleware"
	"onboarding-logger/src/services/events"
	"onboarding-logger/src/services/export"
	submissionSvc "onboarding-logger/src/services/submission"
	"onboarding-logger/src/store"
	"onboarding-logger/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Deps is everything the HTTP surface needs.
type Deps struct {
	EventStore      store.Store
	SubmissionStore store.Store
	AllowedOrigin   string
	ExportToken     string
	SwaggerEnabled  bool
	Metrics         *metrics.Metrics
	Log             *zap.Logger
}

// NewApp builds the Fiber app with middleware and routes registered.
func NewApp(d Deps) *fiber.App {
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "onboarding-logger",
		ErrorHandler:          middleware.ErrorHandler,
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestLogger(d.Log))
	app.Use(middleware.CORS(d.AllowedOrigin))
	app.Use(recover.New())

	InitRoutes(app, d)
	return app
}

// InitRoutes registers the ingest and export routes, then a catch-all 404.
func InitRoutes(app *fiber.App, d Deps) {
	eventRoutes(app, controllers.NewEventController(events.NewEventService(d.EventStore), d.Metrics, d.Log))
	submissionRoutes(app, controllers.NewSubmissionController(submissionSvc.NewSubmissionService(d.SubmissionStore), d.Metrics, d.Log))
	exportRoutes(app, controllers.NewExportController(export.NewExportService(d.EventStore), d.Metrics, d.Log), d)

	if d.SwaggerEnabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// anything left, including a known path with the wrong method
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrNotFound
	})
}
