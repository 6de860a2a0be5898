package controllers

import (
	"errors"

	"onboarding-logger/src/metrics"
	"onboarding-logger/src/services/events"
	"onboarding-logger/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EventController struct {
	svc     *events.EventService
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewEventController(svc *events.EventService, m *metrics.Metrics, log *zap.Logger) *EventController {
	return &EventController{svc: svc, metrics: m, log: log}
}

// LogEvent godoc
// @Summary      Append one interaction event
// @Description  Stores the body under events/<session_id>/<received_at>-<random_id>. Extra fields are kept verbatim.
// @Tags         events
// @Accept       json
// @Produce      plain
// @Param        body body models.EventEnvelope true "session_id, event_type and any extra fields"
// @Success      200  {string}  string  "ok"
// @Failure      400  {string}  string  "Invalid event"
// @Failure      500  {string}  string  "Internal Server Error"
// @Router       /log-event [post]
func (ctrl *EventController) LogEvent(c *fiber.Ctx) error {
	key, err := ctrl.svc.LogEvent(c.UserContext(), c.Body())
	if errors.Is(err, utils.ErrInvalidInput) {
		ctrl.metrics.RejectedRequests.WithLabelValues("/log-event").Inc()
		ctrl.log.Debug("event rejected", zap.Error(err))
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid event")
	}
	if err != nil {
		return err
	}

	ctrl.metrics.EventsLogged.Inc()
	ctrl.log.Debug("event stored", zap.String("key", key))
	return c.SendString("ok")
}
