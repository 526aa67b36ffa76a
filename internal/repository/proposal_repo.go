package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fcp-bot-service/internal/database"
	"fcp-bot-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// ProposalRepository реализует хранилище предложений FCP в PostgreSQL.
// Внутри WithIssueLock экземпляр привязан к транзакции и не открывает новых.
type ProposalRepository struct {
	db      *sql.DB
	queries *database.Queries
	inTx    bool
}

// NewProposalRepository создает новый экземпляр ProposalRepository.
func NewProposalRepository(db *sql.DB, queries *database.Queries) domain.ProposalRepository {
	return &ProposalRepository{
		db:      db,
		queries: queries,
	}
}

// WithIssueLock выполняет fn в транзакции под блокировкой строки issue (SELECT ... FOR UPDATE).
func (r *ProposalRepository) WithIssueLock(ctx context.Context, issueID int64, fn func(store domain.ProposalStore) error) (err error) {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txRepo := &ProposalRepository{
		db:      r.db,
		queries: r.queries.WithTx(tx),
		inTx:    true,
	}

	if _, err = txRepo.queries.LockIssue(ctx, issueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrIssueNotFound
		}
		return fmt.Errorf("failed to lock issue %d: %w", issueID, err)
	}

	if err = fn(txRepo); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// withTx выполняет fn в текущей транзакции или открывает новую.
func (r *ProposalRepository) withTx(ctx context.Context, fn func(q *database.Queries) error) (err error) {
	if r.inTx {
		return fn(r.queries)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(r.queries.WithTx(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetActiveProposal возвращает активное предложение по issue.
func (r *ProposalRepository) GetActiveProposal(ctx context.Context, issueID int64) (*domain.Proposal, error) {
	dbProposal, err := r.queries.GetActiveProposal(ctx, issueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	return toDomainProposal(dbProposal), nil
}

// ListActiveProposals возвращает все активные предложения.
func (r *ProposalRepository) ListActiveProposals(ctx context.Context) ([]*domain.Proposal, error) {
	dbProposals, err := r.queries.ListActiveProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	proposals := make([]*domain.Proposal, 0, len(dbProposals))
	for _, p := range dbProposals {
		proposals = append(proposals, toDomainProposal(p))
	}

	return proposals, nil
}

// CreateProposal создает предложение и по запросу ревью на каждого ревьювера.
func (r *ProposalRepository) CreateProposal(ctx context.Context, proposal *domain.Proposal, reviewerIDs []int64) (*domain.Proposal, error) {
	var created database.FcpProposal

	err := r.withTx(ctx, func(q *database.Queries) error {
		// 1. Создаем предложение
		var err error
		created, err = q.CreateProposal(ctx, database.CreateProposalParams{
			IssueID:             proposal.IssueID,
			InitiatorID:         proposal.InitiatorID,
			InitiatingCommentID: proposal.InitiatingCommentID,
			Disposition:         string(proposal.Disposition),
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domain.ErrProposalAlreadyExists
			}
			return fmt.Errorf("failed to create proposal: %w", err)
		}

		// 2. Создаем запросы ревью
		for _, reviewerID := range reviewerIDs {
			err = q.CreateReviewRequest(ctx, database.CreateReviewRequestParams{
				ProposalID: created.ID,
				ReviewerID: reviewerID,
			})
			if err != nil {
				return fmt.Errorf("failed to create review request for %d: %w", reviewerID, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDomainProposal(created), nil
}

// DeleteProposal удаляет предложение вместе с запросами ревью и возражениями.
func (r *ProposalRepository) DeleteProposal(ctx context.Context, proposalID int64) error {
	return r.withTx(ctx, func(q *database.Queries) error {
		if err := q.DeleteReviewRequestsByProposal(ctx, proposalID); err != nil {
			return fmt.Errorf("failed to delete review requests: %w", err)
		}
		if err := q.DeleteConcernsByProposal(ctx, proposalID); err != nil {
			return fmt.Errorf("failed to delete concerns: %w", err)
		}

		deleted, err := q.DeleteProposal(ctx, proposalID)
		if err != nil {
			return fmt.Errorf("failed to delete proposal: %w", err)
		}
		if deleted == 0 {
			return domain.ErrProposalNotFound
		}
		return nil
	})
}

// GetReviewRequest возвращает запрос ревью ревьювера по предложению.
func (r *ProposalRepository) GetReviewRequest(ctx context.Context, proposalID, reviewerID int64) (*domain.ReviewRequest, error) {
	dbRequest, err := r.queries.GetReviewRequest(ctx, database.GetReviewRequestParams{
		ProposalID: proposalID,
		ReviewerID: reviewerID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewRequestNotFound
		}
		return nil, fmt.Errorf("failed to get review request: %w", err)
	}

	return toDomainReviewRequest(dbRequest), nil
}

// ListReviewRequests возвращает все запросы ревью предложения.
func (r *ProposalRepository) ListReviewRequests(ctx context.Context, proposalID int64) ([]*domain.ReviewRequest, error) {
	dbRequests, err := r.queries.ListReviewRequests(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list review requests: %w", err)
	}

	requests := make([]*domain.ReviewRequest, 0, len(dbRequests))
	for _, rr := range dbRequests {
		requests = append(requests, toDomainReviewRequest(rr))
	}

	return requests, nil
}

// MarkReviewed отмечает запрос ревью комментарием ревьювера.
func (r *ProposalRepository) MarkReviewed(ctx context.Context, reviewRequestID, commentID int64) error {
	err := r.queries.MarkReviewed(ctx, database.MarkReviewedParams{
		ID:                reviewRequestID,
		ReviewedCommentID: toNullID(commentID),
	})
	if err != nil {
		return fmt.Errorf("failed to mark reviewed: %w", err)
	}
	return nil
}

// GetConcern возвращает возражение по точному имени.
func (r *ProposalRepository) GetConcern(ctx context.Context, proposalID int64, name string) (*domain.Concern, error) {
	dbConcern, err := r.queries.GetConcern(ctx, database.GetConcernParams{
		ProposalID: proposalID,
		Name:       name,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConcernNotFound
		}
		return nil, fmt.Errorf("failed to get concern: %w", err)
	}

	return toDomainConcern(dbConcern), nil
}

// ListConcerns возвращает все возражения предложения.
func (r *ProposalRepository) ListConcerns(ctx context.Context, proposalID int64) ([]*domain.Concern, error) {
	dbConcerns, err := r.queries.ListConcerns(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list concerns: %w", err)
	}

	concerns := make([]*domain.Concern, 0, len(dbConcerns))
	for _, c := range dbConcerns {
		concerns = append(concerns, toDomainConcern(c))
	}

	return concerns, nil
}

// CreateConcern создает открытое возражение.
func (r *ProposalRepository) CreateConcern(ctx context.Context, concern *domain.Concern) (*domain.Concern, error) {
	dbConcern, err := r.queries.CreateConcern(ctx, database.CreateConcernParams{
		ProposalID:  concern.ProposalID,
		InitiatorID: concern.InitiatorID,
		Name:        concern.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create concern: %w", err)
	}

	return toDomainConcern(dbConcern), nil
}

// ResolveConcern отмечает возражение снятым.
func (r *ProposalRepository) ResolveConcern(ctx context.Context, concernID, commentID int64) error {
	err := r.queries.ResolveConcern(ctx, database.ResolveConcernParams{
		ID:                concernID,
		ResolvedCommentID: toNullID(commentID),
	})
	if err != nil {
		return fmt.Errorf("failed to resolve concern: %w", err)
	}
	return nil
}

// GetFeedbackRequest возвращает запрос обратной связи у пользователя по issue.
func (r *ProposalRepository) GetFeedbackRequest(ctx context.Context, issueID, requestedID int64) (*domain.FeedbackRequest, error) {
	dbRequest, err := r.queries.GetFeedbackRequest(ctx, database.GetFeedbackRequestParams{
		IssueID:     issueID,
		RequestedID: requestedID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFeedbackRequestNotFound
		}
		return nil, fmt.Errorf("failed to get feedback request: %w", err)
	}

	return toDomainFeedbackRequest(dbRequest), nil
}

// ListOutstandingFeedbackRequests возвращает запросы обратной связи без ответа.
func (r *ProposalRepository) ListOutstandingFeedbackRequests(ctx context.Context, issueID int64) ([]*domain.FeedbackRequest, error) {
	dbRequests, err := r.queries.ListOutstandingFeedbackRequests(ctx, issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback requests: %w", err)
	}

	requests := make([]*domain.FeedbackRequest, 0, len(dbRequests))
	for _, fr := range dbRequests {
		requests = append(requests, toDomainFeedbackRequest(fr))
	}

	return requests, nil
}

// CreateFeedbackRequest создает запрос обратной связи.
func (r *ProposalRepository) CreateFeedbackRequest(ctx context.Context, request *domain.FeedbackRequest) (*domain.FeedbackRequest, error) {
	dbRequest, err := r.queries.CreateFeedbackRequest(ctx, database.CreateFeedbackRequestParams{
		IssueID:     request.IssueID,
		InitiatorID: request.InitiatorID,
		RequestedID: request.RequestedID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback request: %w", err)
	}

	return toDomainFeedbackRequest(dbRequest), nil
}

// FulfillFeedbackRequest закрывает запрос обратной связи. Уже закрытый запрос не меняется.
func (r *ProposalRepository) FulfillFeedbackRequest(ctx context.Context, requestID, commentID int64) error {
	err := r.queries.FulfillFeedbackRequest(ctx, database.FulfillFeedbackRequestParams{
		ID:                requestID,
		FeedbackCommentID: toNullID(commentID),
	})
	if err != nil {
		return fmt.Errorf("failed to fulfill feedback request: %w", err)
	}
	return nil
}
