package handler

import (
	"net/http"

	"fcp-bot-service/api"
	"fcp-bot-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NagHandler запускает оценку готовности предложений по запросу.
type NagHandler struct {
	*BaseHandler
	nagUseCase domain.NagUseCase
	notifier   domain.Notifier
}

// NewNagHandler создает новый экземпляр NagHandler.
func NewNagHandler(nagUseCase domain.NagUseCase, notifier domain.Notifier, logger *logrus.Logger) *NagHandler {
	return &NagHandler{
		BaseHandler: NewBaseHandler(logger),
		nagUseCase:  nagUseCase,
		notifier:    notifier,
	}
}

// PostNagEvaluate оценивает предложения и передает сигналы получателю.
func (h *NagHandler) PostNagEvaluate(c echo.Context) error {
	logEntry := h.logRequest(c, "evaluate_nags")

	signals, err := h.nagUseCase.Evaluate(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, "Failed to evaluate proposals", err)
	}

	if len(signals) > 0 {
		if err := h.notifier.PublishFinalize(c.Request().Context(), signals); err != nil {
			logEntry.WithError(err).Warn("Failed to publish finalize signals")
		}
	}

	logEntry.WithField("ready", len(signals)).Info("Proposals evaluated")
	return c.JSON(http.StatusOK, api.NagResult{
		Signals: toAPISignals(signals),
	})
}
