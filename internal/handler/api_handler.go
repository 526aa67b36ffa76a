package handler

import (
	"fcp-bot-service/api"
	"fcp-bot-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*CommentHandler
	*NagHandler
	*ProposalHandler
	*BehaviorHandler
}

func NewAPIHandler(
	commentUseCase domain.CommentUseCase,
	nagUseCase domain.NagUseCase,
	proposalUseCase domain.ProposalUseCase,
	behavior domain.BehaviorConfig,
	notifier domain.Notifier,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		CommentHandler:  NewCommentHandler(commentUseCase, logger),
		NagHandler:      NewNagHandler(nagUseCase, notifier, logger),
		ProposalHandler: NewProposalHandler(proposalUseCase, logger),
		BehaviorHandler: NewBehaviorHandler(behavior, logger),
	}
}
