package usecase

import (
	"context"
	"errors"
	"fmt"

	"fcp-bot-service/internal/domain"
)

// FeedbackUseCase закрывает запросы обратной связи.
type FeedbackUseCase struct {
	proposalRepo domain.ProposalRepository
}

// NewFeedbackUseCase создает новый экземпляр FeedbackUseCase.
func NewFeedbackUseCase(proposalRepo domain.ProposalRepository) domain.FeedbackUseCase {
	return &FeedbackUseCase{
		proposalRepo: proposalRepo,
	}
}

// Resolve отмечает открытый запрос обратной связи у автора комментария ответом.
// Членство в командах не проверяется.
func (uc *FeedbackUseCase) Resolve(ctx context.Context, author *domain.GitHubUser, issue *domain.Issue, comment *domain.Comment) error {
	err := uc.proposalRepo.WithIssueLock(ctx, issue.ID, func(store domain.ProposalStore) error {
		request, err := store.GetFeedbackRequest(ctx, issue.ID, author.ID)
		if errors.Is(err, domain.ErrFeedbackRequestNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// Первый ответ побеждает
		if request.Fulfilled() {
			return nil
		}
		return store.FulfillFeedbackRequest(ctx, request.ID, comment.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to resolve feedback on issue %d: %w", issue.ID, err)
	}

	return nil
}
