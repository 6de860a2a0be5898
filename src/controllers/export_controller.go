package controllers

import (
	"onboarding-logger/src/metrics"
	"onboarding-logger/src/services/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExportController struct {
	svc     *export.ExportService
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewExportController(svc *export.ExportService, m *metrics.Metrics, log *zap.Logger) *ExportController {
	return &ExportController{svc: svc, metrics: m, log: log}
}

// ExportEvents godoc
// @Summary      Export stored events as NDJSON
// @Description  Lists every event key under prefix (default events/) and returns the stored records, one per line.
// @Tags         export
// @Produce      application/x-ndjson
// @Security     BearerToken
// @Param        prefix query string false "Key prefix, e.g. events/<session_id>"
// @Success      200  {string}  string  "NDJSON records"
// @Failure      401  {string}  string  "Unauthorized"
// @Failure      500  {string}  string  "Internal Server Error"
// @Router       /export [get]
func (ctrl *ExportController) ExportEvents(c *fiber.Ctx) error {
	prefix := c.Query("prefix")

	out, err := ctrl.svc.ExportEvents(c.UserContext(), prefix)
	if err != nil {
		ctrl.metrics.ExportRequests.WithLabelValues("error").Inc()
		return err
	}

	ctrl.metrics.ExportRequests.WithLabelValues("ok").Inc()
	ctrl.log.Info("export served", zap.String("prefix", prefix), zap.Int("bytes", len(out)))

	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Send(out)
}
