package handler

import (
	"net/http"

	"fcp-bot-service/api"
	"fcp-bot-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// CommentHandler принимает пачки новых комментариев.
type CommentHandler struct {
	*BaseHandler
	commentUseCase domain.CommentUseCase
}

// NewCommentHandler создает новый экземпляр CommentHandler.
func NewCommentHandler(commentUseCase domain.CommentUseCase, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    NewBaseHandler(logger),
		commentUseCase: commentUseCase,
	}
}

// PostCommentsProcess сохраняет комментарии и прогоняет их через обработку команд.
func (h *CommentHandler) PostCommentsProcess(c echo.Context) error {
	var req api.PostCommentsProcessJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind process comments request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "process_comments").WithField("comments_count", len(req.Comments))
	logEntry.Info("Processing comments batch")

	incoming := make([]*domain.IncomingComment, len(req.Comments))
	for i, in := range req.Comments {
		incoming[i] = toDomainIncoming(in)
	}

	ctx := c.Request().Context()

	comments, err := h.commentUseCase.RecordComments(ctx, incoming)
	if err != nil {
		return h.respondError(c, logEntry, "Failed to record comments", err)
	}

	result, err := h.commentUseCase.ProcessComments(ctx, comments)
	if err != nil {
		return h.respondError(c, logEntry, "Failed to process comments", err)
	}

	logEntry.WithFields(logrus.Fields{
		"commands": result.Commands,
		"dropped":  result.Dropped,
		"ready":    len(result.Signals),
	}).Info("Comments batch processed successfully")

	return c.JSON(http.StatusOK, api.BatchResult{
		Processed: result.Processed,
		Commands:  result.Commands,
		Dropped:   result.Dropped,
		Signals:   toAPISignals(result.Signals),
	})
}
