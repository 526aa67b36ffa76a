package handler

import (
	"net/http"

	"fcp-bot-service/api"
	"fcp-bot-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ProposalHandler отдает состояние FCP по issue.
type ProposalHandler struct {
	*BaseHandler
	proposalUseCase domain.ProposalUseCase
}

// NewProposalHandler создает новый экземпляр ProposalHandler.
func NewProposalHandler(proposalUseCase domain.ProposalUseCase, logger *logrus.Logger) *ProposalHandler {
	return &ProposalHandler{
		BaseHandler:     NewBaseHandler(logger),
		proposalUseCase: proposalUseCase,
	}
}

// GetProposalGet возвращает активное предложение по issue.
func (h *ProposalHandler) GetProposalGet(c echo.Context, params api.GetProposalGetParams) error {
	logEntry := h.logRequest(c, "get_proposal").WithField("issue_id", params.IssueId)
	logEntry.Info("Getting proposal status")

	status, err := h.proposalUseCase.GetStatus(c.Request().Context(), params.IssueId)
	if err != nil {
		return h.respondError(c, logEntry, "Failed to get proposal status", err)
	}

	return c.JSON(http.StatusOK, toAPIProposalStatus(status))
}
