package memory

import (
	"context"
	"fmt"

	"fcp-bot-service/internal/domain"
)

type proposalRepo struct {
	s    *Store
	inTx bool
}

// WithIssueLock выполняет fn под блокировкой хранилища. Ошибка fn откатывает
// все изменения предложений, сделанные внутри fn.
func (r *proposalRepo) WithIssueLock(_ context.Context, issueID int64, fn func(store domain.ProposalStore) error) error {
	if r.inTx {
		return fn(r)
	}

	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	r.s.mu.RLock()
	_, ok := r.s.issues[issueID]
	r.s.mu.RUnlock()
	if !ok {
		return domain.ErrIssueNotFound
	}

	snap := r.s.takeSnapshot()
	if err := fn(&proposalRepo{s: r.s, inTx: true}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// mutate выполняет изменение под txMu, если вызов пришел не из WithIssueLock.
func (r *proposalRepo) mutate(fn func() error) error {
	if !r.inTx {
		r.s.txMu.Lock()
		defer r.s.txMu.Unlock()
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn()
}

func (r *proposalRepo) GetActiveProposal(_ context.Context, issueID int64) (*domain.Proposal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.proposals {
		if p.IssueID == issueID {
			return &p, nil
		}
	}
	return nil, domain.ErrProposalNotFound
}

func (r *proposalRepo) ListActiveProposals(_ context.Context) ([]*domain.Proposal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	proposals := make([]*domain.Proposal, 0, len(r.s.proposals))
	for _, id := range sortedKeys(r.s.proposals) {
		p := r.s.proposals[id]
		proposals = append(proposals, &p)
	}
	return proposals, nil
}

func (r *proposalRepo) CreateProposal(_ context.Context, proposal *domain.Proposal, reviewerIDs []int64) (*domain.Proposal, error) {
	var created domain.Proposal

	err := r.mutate(func() error {
		if _, ok := r.s.issues[proposal.IssueID]; !ok {
			return fmt.Errorf("failed to create proposal: %w", domain.ErrIssueNotFound)
		}
		for _, p := range r.s.proposals {
			if p.IssueID == proposal.IssueID {
				return domain.ErrProposalAlreadyExists
			}
		}
		for _, reviewerID := range reviewerIDs {
			if _, ok := r.s.users[reviewerID]; !ok {
				return fmt.Errorf("failed to create review request for %d: %w", reviewerID, domain.ErrUserNotFound)
			}
		}

		r.s.nextProposal++
		created = *proposal
		created.ID = r.s.nextProposal
		r.s.proposals[created.ID] = created

		// Повторный ревьювер игнорируется, как ON CONFLICT DO NOTHING
		seen := make(map[int64]bool, len(reviewerIDs))
		for _, reviewerID := range reviewerIDs {
			if seen[reviewerID] {
				continue
			}
			seen[reviewerID] = true
			r.s.nextReview++
			r.s.reviews[r.s.nextReview] = domain.ReviewRequest{
				ID:         r.s.nextReview,
				ProposalID: created.ID,
				ReviewerID: reviewerID,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *proposalRepo) DeleteProposal(_ context.Context, proposalID int64) error {
	return r.mutate(func() error {
		if _, ok := r.s.proposals[proposalID]; !ok {
			return domain.ErrProposalNotFound
		}
		for id, rr := range r.s.reviews {
			if rr.ProposalID == proposalID {
				delete(r.s.reviews, id)
			}
		}
		for id, c := range r.s.concerns {
			if c.ProposalID == proposalID {
				delete(r.s.concerns, id)
			}
		}
		delete(r.s.proposals, proposalID)
		return nil
	})
}

func (r *proposalRepo) GetReviewRequest(_ context.Context, proposalID, reviewerID int64) (*domain.ReviewRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rr := range r.s.reviews {
		if rr.ProposalID == proposalID && rr.ReviewerID == reviewerID {
			return &rr, nil
		}
	}
	return nil, domain.ErrReviewRequestNotFound
}

func (r *proposalRepo) ListReviewRequests(_ context.Context, proposalID int64) ([]*domain.ReviewRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	requests := make([]*domain.ReviewRequest, 0)
	for _, id := range sortedKeys(r.s.reviews) {
		if rr := r.s.reviews[id]; rr.ProposalID == proposalID {
			requests = append(requests, &rr)
		}
	}
	return requests, nil
}

func (r *proposalRepo) MarkReviewed(_ context.Context, reviewRequestID, commentID int64) error {
	return r.mutate(func() error {
		rr, ok := r.s.reviews[reviewRequestID]
		if !ok {
			return domain.ErrReviewRequestNotFound
		}
		rr.ReviewedCommentID = idRef(commentID)
		r.s.reviews[reviewRequestID] = rr
		return nil
	})
}

func (r *proposalRepo) GetConcern(_ context.Context, proposalID int64, name string) (*domain.Concern, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.concerns {
		if c.ProposalID == proposalID && c.Name == name {
			return &c, nil
		}
	}
	return nil, domain.ErrConcernNotFound
}

func (r *proposalRepo) ListConcerns(_ context.Context, proposalID int64) ([]*domain.Concern, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	concerns := make([]*domain.Concern, 0)
	for _, id := range sortedKeys(r.s.concerns) {
		if c := r.s.concerns[id]; c.ProposalID == proposalID {
			concerns = append(concerns, &c)
		}
	}
	return concerns, nil
}

func (r *proposalRepo) CreateConcern(_ context.Context, concern *domain.Concern) (*domain.Concern, error) {
	var created domain.Concern

	err := r.mutate(func() error {
		if _, ok := r.s.proposals[concern.ProposalID]; !ok {
			return fmt.Errorf("failed to create concern: %w", domain.ErrProposalNotFound)
		}
		for _, c := range r.s.concerns {
			if c.ProposalID == concern.ProposalID && c.Name == concern.Name {
				return fmt.Errorf("failed to create concern: duplicate name %q", concern.Name)
			}
		}

		r.s.nextConcern++
		created = domain.Concern{
			ID:          r.s.nextConcern,
			ProposalID:  concern.ProposalID,
			InitiatorID: concern.InitiatorID,
			Name:        concern.Name,
		}
		r.s.concerns[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *proposalRepo) ResolveConcern(_ context.Context, concernID, commentID int64) error {
	return r.mutate(func() error {
		c, ok := r.s.concerns[concernID]
		if !ok {
			return domain.ErrConcernNotFound
		}
		c.ResolvedCommentID = idRef(commentID)
		r.s.concerns[concernID] = c
		return nil
	})
}

func (r *proposalRepo) GetFeedbackRequest(_ context.Context, issueID, requestedID int64) (*domain.FeedbackRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, fr := range r.s.feedback {
		if fr.IssueID == issueID && fr.RequestedID == requestedID {
			return &fr, nil
		}
	}
	return nil, domain.ErrFeedbackRequestNotFound
}

func (r *proposalRepo) ListOutstandingFeedbackRequests(_ context.Context, issueID int64) ([]*domain.FeedbackRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	requests := make([]*domain.FeedbackRequest, 0)
	for _, id := range sortedKeys(r.s.feedback) {
		if fr := r.s.feedback[id]; fr.IssueID == issueID && !fr.Fulfilled() {
			requests = append(requests, &fr)
		}
	}
	return requests, nil
}

func (r *proposalRepo) CreateFeedbackRequest(_ context.Context, request *domain.FeedbackRequest) (*domain.FeedbackRequest, error) {
	var created domain.FeedbackRequest

	err := r.mutate(func() error {
		if _, ok := r.s.issues[request.IssueID]; !ok {
			return fmt.Errorf("failed to create feedback request: %w", domain.ErrIssueNotFound)
		}
		for _, fr := range r.s.feedback {
			if fr.IssueID == request.IssueID && fr.RequestedID == request.RequestedID {
				return fmt.Errorf("failed to create feedback request: duplicate for user %d", request.RequestedID)
			}
		}

		r.s.nextFeedback++
		created = domain.FeedbackRequest{
			ID:          r.s.nextFeedback,
			IssueID:     request.IssueID,
			InitiatorID: request.InitiatorID,
			RequestedID: request.RequestedID,
		}
		r.s.feedback[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FulfillFeedbackRequest не трогает уже закрытый запрос.
func (r *proposalRepo) FulfillFeedbackRequest(_ context.Context, requestID, commentID int64) error {
	return r.mutate(func() error {
		fr, ok := r.s.feedback[requestID]
		if !ok || fr.Fulfilled() {
			return nil
		}
		fr.FeedbackCommentID = idRef(commentID)
		r.s.feedback[requestID] = fr
		return nil
	})
}
