package repository

import (
	"database/sql"

	"fcp-bot-service/internal/database"
	"fcp-bot-service/internal/domain"
)

// Конвертируем sql.NullInt64 → *int64
func fromNullID(id sql.NullInt64) *int64 {
	if !id.Valid {
		return nil
	}
	v := id.Int64
	return &v
}

func toNullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: true}
}

func toDomainProposal(p database.FcpProposal) *domain.Proposal {
	return &domain.Proposal{
		ID:                  p.ID,
		IssueID:             p.IssueID,
		InitiatorID:         p.InitiatorID,
		InitiatingCommentID: p.InitiatingCommentID,
		Disposition:         domain.Disposition(p.Disposition),
		CreatedAt:           p.CreatedAt,
	}
}

func toDomainReviewRequest(rr database.FcpReviewRequest) *domain.ReviewRequest {
	return &domain.ReviewRequest{
		ID:                rr.ID,
		ProposalID:        rr.ProposalID,
		ReviewerID:        rr.ReviewerID,
		ReviewedCommentID: fromNullID(rr.ReviewedCommentID),
	}
}

func toDomainConcern(c database.FcpConcern) *domain.Concern {
	return &domain.Concern{
		ID:                c.ID,
		ProposalID:        c.ProposalID,
		InitiatorID:       c.InitiatorID,
		Name:              c.Name,
		ResolvedCommentID: fromNullID(c.ResolvedCommentID),
	}
}

func toDomainFeedbackRequest(fr database.FeedbackRequest) *domain.FeedbackRequest {
	return &domain.FeedbackRequest{
		ID:                fr.ID,
		IssueID:           fr.IssueID,
		InitiatorID:       fr.InitiatorID,
		RequestedID:       fr.RequestedID,
		FeedbackCommentID: fromNullID(fr.FeedbackCommentID),
	}
}
