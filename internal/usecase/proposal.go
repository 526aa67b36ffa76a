package usecase

import (
	"context"

	"fcp-bot-service/internal/domain"
)

// ProposalUseCase отдает текущее состояние FCP по issue.
type ProposalUseCase struct {
	proposalRepo domain.ProposalRepository
}

// NewProposalUseCase создает новый экземпляр ProposalUseCase.
func NewProposalUseCase(proposalRepo domain.ProposalRepository) domain.ProposalUseCase {
	return &ProposalUseCase{
		proposalRepo: proposalRepo,
	}
}

// GetStatus возвращает активное предложение с ревью, возражениями и открытыми запросами обратной связи.
func (uc *ProposalUseCase) GetStatus(ctx context.Context, issueID int64) (*domain.ProposalStatus, error) {
	if issueID <= 0 {
		return nil, domain.ErrInvalidIssueID
	}

	proposal, err := uc.proposalRepo.GetActiveProposal(ctx, issueID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.proposalRepo.ListReviewRequests(ctx, proposal.ID)
	if err != nil {
		return nil, err
	}

	concerns, err := uc.proposalRepo.ListConcerns(ctx, proposal.ID)
	if err != nil {
		return nil, err
	}

	feedback, err := uc.proposalRepo.ListOutstandingFeedbackRequests(ctx, issueID)
	if err != nil {
		return nil, err
	}

	return &domain.ProposalStatus{
		Proposal:         proposal,
		ReviewRequests:   reviews,
		Concerns:         concerns,
		FeedbackRequests: feedback,
	}, nil
}
