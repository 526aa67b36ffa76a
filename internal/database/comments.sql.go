package database

import (
	"context"
	"time"
)

const createComment = `
INSERT INTO issue_comments (id, issue_id, user_id, body, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING
`

type CreateCommentParams struct {
	ID        int64
	IssueID   int64
	UserID    int64
	Body      string
	CreatedAt time.Time
}

func (q *Queries) CreateComment(ctx context.Context, arg CreateCommentParams) error {
	_, err := q.db.ExecContext(ctx, createComment,
		arg.ID,
		arg.IssueID,
		arg.UserID,
		arg.Body,
		arg.CreatedAt,
	)
	return err
}
