package controllers

import (
	"errors"

	"onboarding-logger/src/metrics"
	submissionSvc "onboarding-logger/src/services/submission"
	"onboarding-logger/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SubmissionController struct {
	svc     *submissionSvc.SubmissionService
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewSubmissionController(svc *submissionSvc.SubmissionService, m *metrics.Metrics, log *zap.Logger) *SubmissionController {
	return &SubmissionController{svc: svc, metrics: m, log: log}
}

// SubmitResponses godoc
// @Summary      Store the final answers of a session
// @Description  Writes submissions/<session_id>.json. A repeat submission for the same session overwrites the previous one.
// @Tags         submissions
// @Accept       json
// @Produce      plain
// @Param        body body models.SubmissionRequest true "session_id, responses and optional metadata"
// @Success      200  {string}  string  "submitted"
// @Failure      400  {string}  string  "Invalid submission"
// @Failure      500  {string}  string  "Internal Server Error"
// @Router       /submit [post]
func (ctrl *SubmissionController) SubmitResponses(c *fiber.Ctx) error {
	key, err := ctrl.svc.SubmitResponses(c.UserContext(), c.Body())
	if errors.Is(err, utils.ErrInvalidInput) {
		ctrl.metrics.RejectedRequests.WithLabelValues("/submit").Inc()
		ctrl.log.Debug("submission rejected", zap.Error(err))
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid submission")
	}
	if err != nil {
		return err
	}

	ctrl.metrics.Submissions.Inc()
	ctrl.log.Info("submission stored", zap.String("key", key))
	return c.SendString("submitted")
}
