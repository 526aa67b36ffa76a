package usecase_test

import (
	"testing"

	"fcp-bot-service/internal/domain"
	"fcp-bot-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalUseCase_GetStatus(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewProposalUseCase(f.store.Proposals())

	_, err := uc.GetStatus(f.ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidIssueID)

	_, err = uc.GetStatus(f.ctx, f.issueID())
	assert.ErrorIs(t, err, domain.ErrProposalNotFound)

	f.post(
		f.incoming("alice", "@rfcbot fcp merge"),
		f.incoming("alice", "@rfcbot reviewed"),
		f.incoming("bob", "@rfcbot concern scope"),
		f.incoming("bob", "@rfcbot f? @erin"),
	)

	status, err := uc.GetStatus(f.ctx, f.issueID())
	require.NoError(t, err)
	assert.Len(t, status.ReviewRequests, 2)
	assert.Len(t, status.Concerns, 1)
	assert.Len(t, status.FeedbackRequests, 1)
	assert.False(t, status.Ready())

	f.post(f.incoming("bob", "@rfcbot reviewed"), f.incoming("bob", "@rfcbot resolved scope"))

	status, err = uc.GetStatus(f.ctx, f.issueID())
	require.NoError(t, err)
	assert.True(t, status.Ready())
}
