package handler

import (
	"net/http"

	"fcp-bot-service/api"
	"fcp-bot-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// BehaviorHandler отдает настройки репозитория из конфигурации бота.
type BehaviorHandler struct {
	*BaseHandler
	behavior domain.BehaviorConfig
}

// NewBehaviorHandler создает новый экземпляр BehaviorHandler.
func NewBehaviorHandler(behavior domain.BehaviorConfig, logger *logrus.Logger) *BehaviorHandler {
	return &BehaviorHandler{
		BaseHandler: NewBaseHandler(logger),
		behavior:    behavior,
	}
}

// GetRepositoryBehavior возвращает флаги FCP и запрещенные реакции. Для неизвестного репозитория все выключено.
func (h *BehaviorHandler) GetRepositoryBehavior(c echo.Context, params api.GetRepositoryBehaviorParams) error {
	if params.Repository == "" {
		httpErr, _ := domain.ToHTTPError(domain.ErrInvalidRepository)
		return c.JSON(http.StatusBadRequest, toAPIErrorResponse(httpErr))
	}

	h.logRequest(c, "get_repository_behavior").WithField("repository", params.Repository).Debug("Getting repository behavior")

	issueReactions := make([]string, 0)
	commentReactions := make([]string, 0)
	for _, r := range domain.Reactions {
		if h.behavior.IsIssueReactionProhibited(params.Repository, r) {
			issueReactions = append(issueReactions, string(r))
		}
		if h.behavior.IsCommentReactionProhibited(params.Repository, r) {
			commentReactions = append(commentReactions, string(r))
		}
	}

	return c.JSON(http.StatusOK, api.RepositoryBehavior{
		Repository:                 params.Repository,
		AutoClose:                  h.behavior.ShouldAutoClose(params.Repository),
		AutoPostpone:               h.behavior.ShouldAutoPostpone(params.Repository),
		ProhibitedIssueReactions:   issueReactions,
		ProhibitedCommentReactions: commentReactions,
	})
}
