package domain

import (
	"context"
	"time"
)

// Proposal - активное предложение FCP. На одну issue не больше одного.
type Proposal struct {
	ID                  int64
	IssueID             int64
	InitiatorID         int64
	InitiatingCommentID int64
	Disposition         Disposition
	CreatedAt           time.Time
}

// ReviewRequest - запрос ревью предложения у участника команды.
type ReviewRequest struct {
	ID                int64
	ProposalID        int64
	ReviewerID        int64
	ReviewedCommentID *int64
}

// Reviewed сообщает, отметился ли ревьювер.
func (r *ReviewRequest) Reviewed() bool {
	return r.ReviewedCommentID != nil
}

// Concern - именованное возражение против предложения.
type Concern struct {
	ID                int64
	ProposalID        int64
	InitiatorID       int64
	Name              string
	ResolvedCommentID *int64
}

// Resolved сообщает, снято ли возражение.
func (c *Concern) Resolved() bool {
	return c.ResolvedCommentID != nil
}

// FeedbackRequest - запрос обратной связи у конкретного пользователя. Не зависит от Proposal.
type FeedbackRequest struct {
	ID                int64
	IssueID           int64
	InitiatorID       int64
	RequestedID       int64
	FeedbackCommentID *int64
}

// Fulfilled сообщает, ответил ли запрошенный пользователь.
func (f *FeedbackRequest) Fulfilled() bool {
	return f.FeedbackCommentID != nil
}

// ProposalStatus - предложение вместе с ревью, возражениями и открытыми запросами обратной связи.
type ProposalStatus struct {
	Proposal         *Proposal
	ReviewRequests   []*ReviewRequest
	Concerns         []*Concern
	FeedbackRequests []*FeedbackRequest
}

// Ready сообщает, что все возражения сняты и все ревью получены.
func (s *ProposalStatus) Ready() bool {
	return IsReadyToFinalize(s.ReviewRequests, s.Concerns)
}

// IsReadyToFinalize - условие завершения FCP.
func IsReadyToFinalize(reviews []*ReviewRequest, concerns []*Concern) bool {
	for _, c := range concerns {
		if !c.Resolved() {
			return false
		}
	}
	for _, r := range reviews {
		if !r.Reviewed() {
			return false
		}
	}
	return true
}

// ProposalStore - операции над предложениями и связанными записями.
// Поиск отсутствующей записи возвращает соответствующую ErrXxxNotFound.
type ProposalStore interface {
	GetActiveProposal(ctx context.Context, issueID int64) (*Proposal, error)
	ListActiveProposals(ctx context.Context) ([]*Proposal, error)
	CreateProposal(ctx context.Context, proposal *Proposal, reviewerIDs []int64) (*Proposal, error)
	// DeleteProposal удаляет предложение вместе со всеми его ReviewRequest и Concern.
	DeleteProposal(ctx context.Context, proposalID int64) error

	GetReviewRequest(ctx context.Context, proposalID, reviewerID int64) (*ReviewRequest, error)
	ListReviewRequests(ctx context.Context, proposalID int64) ([]*ReviewRequest, error)
	MarkReviewed(ctx context.Context, reviewRequestID, commentID int64) error

	GetConcern(ctx context.Context, proposalID int64, name string) (*Concern, error)
	ListConcerns(ctx context.Context, proposalID int64) ([]*Concern, error)
	CreateConcern(ctx context.Context, concern *Concern) (*Concern, error)
	ResolveConcern(ctx context.Context, concernID, commentID int64) error

	GetFeedbackRequest(ctx context.Context, issueID, requestedID int64) (*FeedbackRequest, error)
	ListOutstandingFeedbackRequests(ctx context.Context, issueID int64) ([]*FeedbackRequest, error)
	CreateFeedbackRequest(ctx context.Context, request *FeedbackRequest) (*FeedbackRequest, error)
	FulfillFeedbackRequest(ctx context.Context, requestID, commentID int64) error
}

// ProposalRepository - ProposalStore с транзакциями, сериализованными по issue.
type ProposalRepository interface {
	ProposalStore
	// WithIssueLock выполняет fn в одной транзакции под блокировкой строки issue.
	// Ошибка fn откатывает транзакцию.
	WithIssueLock(ctx context.Context, issueID int64, fn func(store ProposalStore) error) error
}
