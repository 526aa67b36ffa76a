package usecase

import (
	"context"
	"errors"
	"fmt"

	"fcp-bot-service/internal/domain"
)

// ProcessUseCase применяет команды бота к предложениям FCP.
// Каждая команда выполняется в одной транзакции под блокировкой issue.
type ProcessUseCase struct {
	proposalRepo domain.ProposalRepository
	userRepo     domain.UserRepository
}

// NewProcessUseCase создает новый экземпляр ProcessUseCase.
func NewProcessUseCase(proposalRepo domain.ProposalRepository, userRepo domain.UserRepository) domain.ProcessUseCase {
	return &ProcessUseCase{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
	}
}

// Apply применяет команду и возвращает намерения для уведомлений.
// Недостижимые предусловия (нет предложения, нет ревью и т.п.) не являются ошибкой.
func (uc *ProcessUseCase) Apply(
	ctx context.Context,
	cmd domain.Command,
	author *domain.GitHubUser,
	issue *domain.Issue,
	comment *domain.Comment,
	members []*domain.GitHubUser,
) ([]domain.Intent, error) {
	var (
		intents []domain.Intent
		err     error
	)

	switch cmd.Kind {
	case domain.CommandFeedbackRequest:
		intents, err = uc.requestFeedback(ctx, cmd.Arg, author, issue, comment)
	case domain.CommandFcpPropose, domain.CommandFcpCancel, domain.CommandReviewed,
		domain.CommandNewConcern, domain.CommandResolveConcern:
		err = uc.proposalRepo.WithIssueLock(ctx, issue.ID, func(store domain.ProposalStore) error {
			var txErr error
			intents, txErr = uc.applyToProposal(ctx, store, cmd, author, issue, comment, members)
			return txErr
		})
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, cmd.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s on issue %d: %w", cmd.Kind, issue.ID, err)
	}

	return intents, nil
}

func (uc *ProcessUseCase) applyToProposal(
	ctx context.Context,
	store domain.ProposalStore,
	cmd domain.Command,
	author *domain.GitHubUser,
	issue *domain.Issue,
	comment *domain.Comment,
	members []*domain.GitHubUser,
) ([]domain.Intent, error) {
	proposal, err := store.GetActiveProposal(ctx, issue.ID)
	if err != nil && !errors.Is(err, domain.ErrProposalNotFound) {
		return nil, err
	}

	if cmd.Kind == domain.CommandFcpPropose {
		// Предложение уже есть: смена disposition пока не поддерживается
		if proposal != nil {
			return nil, nil
		}
		return uc.propose(ctx, store, cmd.Disposition, author, issue, comment, members)
	}

	// Остальным командам нужно активное предложение
	if proposal == nil {
		return nil, nil
	}

	switch cmd.Kind {
	case domain.CommandFcpCancel:
		if err := store.DeleteProposal(ctx, proposal.ID); err != nil {
			return nil, err
		}
		return []domain.Intent{{
			Kind:        domain.IntentProposalCancelled,
			IssueID:     issue.ID,
			CommentID:   comment.ID,
			AuthorLogin: author.Login,
			Disposition: proposal.Disposition,
		}}, nil

	case domain.CommandReviewed:
		rr, err := store.GetReviewRequest(ctx, proposal.ID, author.ID)
		if errors.Is(err, domain.ErrReviewRequestNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return nil, store.MarkReviewed(ctx, rr.ID, comment.ID)

	case domain.CommandNewConcern:
		_, err := store.GetConcern(ctx, proposal.ID, cmd.Arg)
		if err == nil {
			return nil, nil
		}
		if !errors.Is(err, domain.ErrConcernNotFound) {
			return nil, err
		}
		if _, err = store.CreateConcern(ctx, &domain.Concern{
			ProposalID:  proposal.ID,
			InitiatorID: author.ID,
			Name:        cmd.Arg,
		}); err != nil {
			return nil, err
		}
		return []domain.Intent{{
			Kind:        domain.IntentConcernRaised,
			IssueID:     issue.ID,
			CommentID:   comment.ID,
			AuthorLogin: author.Login,
			ConcernName: cmd.Arg,
		}}, nil

	case domain.CommandResolveConcern:
		concern, err := store.GetConcern(ctx, proposal.ID, cmd.Arg)
		if errors.Is(err, domain.ErrConcernNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		// Снять возражение может только тот, кто его поднял, и только один раз
		if concern.InitiatorID != author.ID || concern.Resolved() {
			return nil, nil
		}
		if err := store.ResolveConcern(ctx, concern.ID, comment.ID); err != nil {
			return nil, err
		}
		return []domain.Intent{{
			Kind:        domain.IntentConcernResolved,
			IssueID:     issue.ID,
			CommentID:   comment.ID,
			AuthorLogin: author.Login,
			ConcernName: cmd.Arg,
		}}, nil
	}

	return nil, nil
}

func (uc *ProcessUseCase) propose(
	ctx context.Context,
	store domain.ProposalStore,
	disposition domain.Disposition,
	author *domain.GitHubUser,
	issue *domain.Issue,
	comment *domain.Comment,
	members []*domain.GitHubUser,
) ([]domain.Intent, error) {
	// 1. Снимок участников команд на момент предложения
	reviewerIDs := make([]int64, len(members))
	reviewers := make([]string, len(members))
	for i, m := range members {
		reviewerIDs[i] = m.ID
		reviewers[i] = m.Login
	}

	// 2. Создаем предложение вместе с запросами ревью
	_, err := store.CreateProposal(ctx, &domain.Proposal{
		IssueID:             issue.ID,
		InitiatorID:         author.ID,
		InitiatingCommentID: comment.ID,
		Disposition:         disposition,
	}, reviewerIDs)
	if errors.Is(err, domain.ErrProposalAlreadyExists) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return []domain.Intent{{
		Kind:        domain.IntentProposalCreated,
		IssueID:     issue.ID,
		CommentID:   comment.ID,
		AuthorLogin: author.Login,
		Disposition: disposition,
		Reviewers:   reviewers,
	}}, nil
}

func (uc *ProcessUseCase) requestFeedback(
	ctx context.Context,
	login string,
	author *domain.GitHubUser,
	issue *domain.Issue,
	comment *domain.Comment,
) ([]domain.Intent, error) {
	// 1. Неизвестный логин - ошибка обработки комментария
	requested, err := uc.userRepo.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	// 2. Создаем запрос, если его еще нет
	var intents []domain.Intent
	err = uc.proposalRepo.WithIssueLock(ctx, issue.ID, func(store domain.ProposalStore) error {
		_, err := store.GetFeedbackRequest(ctx, issue.ID, requested.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrFeedbackRequestNotFound) {
			return err
		}

		if _, err = store.CreateFeedbackRequest(ctx, &domain.FeedbackRequest{
			IssueID:     issue.ID,
			InitiatorID: author.ID,
			RequestedID: requested.ID,
		}); err != nil {
			return err
		}

		intents = []domain.Intent{{
			Kind:           domain.IntentFeedbackRequested,
			IssueID:        issue.ID,
			CommentID:      comment.ID,
			AuthorLogin:    author.Login,
			RequestedLogin: requested.Login,
		}}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return intents, nil
}
