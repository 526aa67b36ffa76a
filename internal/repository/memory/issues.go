package memory

import (
	"context"
	"fmt"

	"fcp-bot-service/internal/domain"
)

type issueRepo struct {
	s *Store
}

func (r *issueRepo) GetByID(_ context.Context, issueID int64) (*domain.Issue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	issue, ok := r.s.issues[issueID]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	issue.Labels = append([]string(nil), issue.Labels...)
	return &issue, nil
}

func (r *issueRepo) Upsert(_ context.Context, issue *domain.Issue) (*domain.Issue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := issueKey(issue.Repository, issue.Number)
	id, ok := r.s.issueByKey[key]
	if !ok {
		r.s.nextIssue++
		id = r.s.nextIssue
		r.s.issueByKey[key] = id
	}

	stored := domain.Issue{
		ID:         id,
		Repository: issue.Repository,
		Number:     issue.Number,
		Labels:     append([]string(nil), issue.Labels...),
	}
	r.s.issues[id] = stored

	stored.Labels = append([]string(nil), stored.Labels...)
	return &stored, nil
}

type commentRepo struct {
	s *Store
}

func (r *commentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.issues[comment.IssueID]; !ok {
		return fmt.Errorf("failed to create comment %d: %w", comment.ID, domain.ErrIssueNotFound)
	}
	if _, ok := r.s.users[comment.UserID]; !ok {
		return fmt.Errorf("failed to create comment %d: %w", comment.ID, domain.ErrUserNotFound)
	}
	if _, ok := r.s.comments[comment.ID]; ok {
		return nil
	}
	r.s.comments[comment.ID] = *comment
	return nil
}
