package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fcp-bot-service/internal/database"
	"fcp-bot-service/internal/domain"
)

// IssueRepository реализует взаимодействие с данными issue в PostgreSQL.
type IssueRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewIssueRepository создает новый экземпляр IssueRepository.
func NewIssueRepository(db *sql.DB, queries *database.Queries) domain.IssueRepository {
	return &IssueRepository{
		db:      db,
		queries: queries,
	}
}

// GetByID возвращает issue вместе с метками в исходном порядке.
func (r *IssueRepository) GetByID(ctx context.Context, issueID int64) (*domain.Issue, error) {
	dbIssue, err := r.queries.GetIssueByID(ctx, issueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	labels, err := r.queries.GetIssueLabels(ctx, issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue labels: %w", err)
	}

	return &domain.Issue{
		ID:         dbIssue.ID,
		Repository: dbIssue.Repository,
		Number:     dbIssue.Number,
		Labels:     labels,
	}, nil
}

// Upsert находит issue по (repository, number) или создает ее и заменяет набор меток.
func (r *IssueRepository) Upsert(ctx context.Context, issue *domain.Issue) (*domain.Issue, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Создаем или находим issue
	dbIssue, err := txQueries.UpsertIssue(ctx, database.UpsertIssueParams{
		Repository: issue.Repository,
		Number:     issue.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert issue: %w", err)
	}

	// 2. Заменяем метки
	if err = txQueries.DeleteIssueLabels(ctx, dbIssue.ID); err != nil {
		return nil, fmt.Errorf("failed to clear issue labels: %w", err)
	}
	for i, label := range issue.Labels {
		err = txQueries.InsertIssueLabel(ctx, database.InsertIssueLabelParams{
			IssueID:  dbIssue.ID,
			Position: int32(i),
			Label:    label,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert label %s: %w", label, err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.Issue{
		ID:         dbIssue.ID,
		Repository: dbIssue.Repository,
		Number:     dbIssue.Number,
		Labels:     append([]string(nil), issue.Labels...),
	}, nil
}
