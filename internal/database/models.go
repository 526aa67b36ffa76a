package database

import (
	"database/sql"
	"time"
)

type GithubUser struct {
	ID    int64
	Login string
}

type Issue struct {
	ID         int64
	Repository string
	Number     int32
}

type IssueComment struct {
	ID        int64
	IssueID   int64
	UserID    int64
	Body      string
	CreatedAt time.Time
}

type FcpProposal struct {
	ID                  int64
	IssueID             int64
	InitiatorID         int64
	InitiatingCommentID int64
	Disposition         string
	CreatedAt           time.Time
}

type FcpReviewRequest struct {
	ID                int64
	ProposalID        int64
	ReviewerID        int64
	ReviewedCommentID sql.NullInt64
}

type FcpConcern struct {
	ID                int64
	ProposalID        int64
	InitiatorID       int64
	Name              string
	ResolvedCommentID sql.NullInt64
}

type FeedbackRequest struct {
	ID                int64
	IssueID           int64
	InitiatorID       int64
	RequestedID       int64
	FeedbackCommentID sql.NullInt64
}
