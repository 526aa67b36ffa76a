package domain

import (
	"context"
	"time"
)

// Issue представляет issue или PR, на котором идет обсуждение.
type Issue struct {
	ID         int64
	Repository string
	Number     int32
	Labels     []string
}

// Comment представляет комментарий к issue. После создания не меняется.
type Comment struct {
	ID        int64
	IssueID   int64
	UserID    int64
	Body      string
	CreatedAt time.Time
}

// IncomingComment - комментарий в том виде, в котором его присылает источник событий.
type IncomingComment struct {
	CommentID  int64
	Repository string
	Number     int32
	Labels     []string
	Author     GitHubUser
	Body       string
	CreatedAt  time.Time
}

// IssueRepository определяет контракт для работы с хранилищем issue.
type IssueRepository interface {
	GetByID(ctx context.Context, issueID int64) (*Issue, error)
	Upsert(ctx context.Context, issue *Issue) (*Issue, error)
}

// CommentRepository определяет контракт для работы с хранилищем комментариев.
type CommentRepository interface {
	// Create сохраняет комментарий; повторная доставка того же комментария не считается ошибкой.
	Create(ctx context.Context, comment *Comment) error
}
