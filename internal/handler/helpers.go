package handler

import (
	"errors"
	"net/http"

	"fcp-bot-service/api"
	"fcp-bot-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toDomainIncoming(in api.IncomingComment) *domain.IncomingComment {
	var labels []string
	if in.Issue.Labels != nil {
		labels = *in.Issue.Labels
	}

	return &domain.IncomingComment{
		CommentID:  in.CommentId,
		Repository: in.Issue.Repository,
		Number:     in.Issue.Number,
		Labels:     labels,
		Author: domain.GitHubUser{
			ID:    in.Author.Id,
			Login: in.Author.Login,
		},
		Body:      in.Body,
		CreatedAt: in.CreatedAt,
	}
}

func toAPISignals(signals []*domain.FinalizeSignal) []api.FinalizeSignal {
	result := make([]api.FinalizeSignal, len(signals))
	for i, s := range signals {
		result[i] = api.FinalizeSignal{
			ProposalId:   s.ProposalID,
			IssueId:      s.IssueID,
			Repository:   s.Repository,
			IssueNumber:  s.IssueNumber,
			Disposition:  api.Disposition(s.Disposition),
			AutoClose:    s.AutoClose,
			AutoPostpone: s.AutoPostpone,
		}
	}
	return result
}

func toAPIProposalStatus(status *domain.ProposalStatus) api.ProposalStatus {
	reviews := make([]api.ReviewRequest, len(status.ReviewRequests))
	for i, rr := range status.ReviewRequests {
		reviews[i] = api.ReviewRequest{
			ReviewerId:        rr.ReviewerID,
			ReviewedCommentId: rr.ReviewedCommentID,
		}
	}

	concerns := make([]api.Concern, len(status.Concerns))
	for i, c := range status.Concerns {
		concerns[i] = api.Concern{
			Name:              c.Name,
			InitiatorId:       c.InitiatorID,
			ResolvedCommentId: c.ResolvedCommentID,
		}
	}

	feedback := make([]api.FeedbackRequest, len(status.FeedbackRequests))
	for i, fr := range status.FeedbackRequests {
		feedback[i] = api.FeedbackRequest{
			InitiatorId: fr.InitiatorID,
			RequestedId: fr.RequestedID,
		}
	}

	p := status.Proposal
	return api.ProposalStatus{
		Proposal: api.Proposal{
			Id:                  p.ID,
			IssueId:             p.IssueID,
			InitiatorId:         p.InitiatorID,
			InitiatingCommentId: p.InitiatingCommentID,
			Disposition:         api.Disposition(p.Disposition),
			CreatedAt:           p.CreatedAt,
		},
		ReviewRequests:   reviews,
		Concerns:         concerns,
		FeedbackRequests: feedback,
		Ready:            status.Ready(),
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrProposalAlreadyExists):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrIssueNotFound),
		errors.Is(err, domain.ErrProposalNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidIssueID), errors.Is(err, domain.ErrInvalidRepository),
		errors.Is(err, domain.ErrInvalidComment), errors.Is(err, domain.ErrEmptyCommentsBatch):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
