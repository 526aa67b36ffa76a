package repository

import (
	"context"
	"fmt"

	"fcp-bot-service/internal/database"
	"fcp-bot-service/internal/domain"
)

// CommentRepository реализует domain.CommentRepository.
type CommentRepository struct {
	queries *database.Queries
}

// NewCommentRepository создает новый экземпляр CommentRepository.
func NewCommentRepository(queries *database.Queries) domain.CommentRepository {
	return &CommentRepository{
		queries: queries,
	}
}

// Create сохраняет комментарий. Уже сохраненный комментарий не перезаписывается.
func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	err := r.queries.CreateComment(ctx, database.CreateCommentParams{
		ID:        comment.ID,
		IssueID:   comment.IssueID,
		UserID:    comment.UserID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create comment %d: %w", comment.ID, err)
	}
	return nil
}
