// Package mocks содержит testify-моки интерфейсов domain.
package mocks

import (
	"context"

	"fcp-bot-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.GitHubUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GitHubUser), args.Error(1)
}

func (m *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.GitHubUser, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GitHubUser), args.Error(1)
}

func (m *UserRepository) GetByLogins(ctx context.Context, logins []string) ([]*domain.GitHubUser, error) {
	args := m.Called(ctx, logins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GitHubUser), args.Error(1)
}

func (m *UserRepository) Upsert(ctx context.Context, user *domain.GitHubUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type IssueRepository struct {
	mock.Mock
}

func (m *IssueRepository) GetByID(ctx context.Context, issueID int64) (*domain.Issue, error) {
	args := m.Called(ctx, issueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

func (m *IssueRepository) Upsert(ctx context.Context, issue *domain.Issue) (*domain.Issue, error) {
	args := m.Called(ctx, issue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
