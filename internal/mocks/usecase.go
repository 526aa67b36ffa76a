package mocks

import (
	"context"

	"fcp-bot-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CommentUseCase struct {
	mock.Mock
}

func (m *CommentUseCase) RecordComments(ctx context.Context, incoming []*domain.IncomingComment) ([]*domain.Comment, error) {
	args := m.Called(ctx, incoming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *CommentUseCase) ProcessComments(ctx context.Context, comments []*domain.Comment) (*domain.BatchResult, error) {
	args := m.Called(ctx, comments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchResult), args.Error(1)
}

type NagUseCase struct {
	mock.Mock
}

func (m *NagUseCase) Evaluate(ctx context.Context) ([]*domain.FinalizeSignal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FinalizeSignal), args.Error(1)
}

type ProposalUseCase struct {
	mock.Mock
}

func (m *ProposalUseCase) GetStatus(ctx context.Context, issueID int64) (*domain.ProposalStatus, error) {
	args := m.Called(ctx, issueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProposalStatus), args.Error(1)
}

type AuthUseCase struct {
	mock.Mock
}

func (m *AuthUseCase) AuthorizedMembers(ctx context.Context, issue *domain.Issue) ([]*domain.GitHubUser, error) {
	args := m.Called(ctx, issue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GitHubUser), args.Error(1)
}

func (m *AuthUseCase) IsAuthorized(ctx context.Context, user *domain.GitHubUser, issue *domain.Issue) (bool, error) {
	args := m.Called(ctx, user, issue)
	return args.Bool(0), args.Error(1)
}

type ProcessUseCase struct {
	mock.Mock
}

func (m *ProcessUseCase) Apply(
	ctx context.Context,
	cmd domain.Command,
	author *domain.GitHubUser,
	issue *domain.Issue,
	comment *domain.Comment,
	members []*domain.GitHubUser,
) ([]domain.Intent, error) {
	args := m.Called(ctx, cmd, author, issue, comment, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Intent), args.Error(1)
}

type FeedbackUseCase struct {
	mock.Mock
}

func (m *FeedbackUseCase) Resolve(ctx context.Context, author *domain.GitHubUser, issue *domain.Issue, comment *domain.Comment) error {
	args := m.Called(ctx, author, issue, comment)
	return args.Error(0)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) PublishIntents(ctx context.Context, intents []domain.Intent) error {
	args := m.Called(ctx, intents)
	return args.Error(0)
}

func (m *Notifier) PublishFinalize(ctx context.Context, signals []*domain.FinalizeSignal) error {
	args := m.Called(ctx, signals)
	return args.Error(0)
}
