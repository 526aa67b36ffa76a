package usecase

import (
	"context"
	"fmt"

	"fcp-bot-service/internal/domain"
)

// NagUseCase классифицирует активные предложения по готовности к завершению.
type NagUseCase struct {
	proposalRepo domain.ProposalRepository
	issueRepo    domain.IssueRepository
	behavior     domain.BehaviorConfig
}

// NewNagUseCase создает новый экземпляр NagUseCase.
func NewNagUseCase(proposalRepo domain.ProposalRepository, issueRepo domain.IssueRepository, behavior domain.BehaviorConfig) domain.NagUseCase {
	return &NagUseCase{
		proposalRepo: proposalRepo,
		issueRepo:    issueRepo,
		behavior:     behavior,
	}
}

// Evaluate возвращает сигналы для предложений, у которых сняты все возражения
// и получены все ревью. Состояние не меняется.
func (uc *NagUseCase) Evaluate(ctx context.Context) ([]*domain.FinalizeSignal, error) {
	proposals, err := uc.proposalRepo.ListActiveProposals(ctx)
	if err != nil {
		return nil, err
	}

	signals := make([]*domain.FinalizeSignal, 0)
	for _, p := range proposals {
		reviews, err := uc.proposalRepo.ListReviewRequests(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		concerns, err := uc.proposalRepo.ListConcerns(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if !domain.IsReadyToFinalize(reviews, concerns) {
			continue
		}

		issue, err := uc.issueRepo.GetByID(ctx, p.IssueID)
		if err != nil {
			return nil, fmt.Errorf("failed to load issue %d of proposal %d: %w", p.IssueID, p.ID, err)
		}

		signals = append(signals, &domain.FinalizeSignal{
			ProposalID:   p.ID,
			IssueID:      issue.ID,
			Repository:   issue.Repository,
			IssueNumber:  issue.Number,
			Disposition:  p.Disposition,
			AutoClose:    p.Disposition == domain.DispositionClose && uc.behavior.ShouldAutoClose(issue.Repository),
			AutoPostpone: p.Disposition == domain.DispositionPostpone && uc.behavior.ShouldAutoPostpone(issue.Repository),
		})
	}

	return signals, nil
}
