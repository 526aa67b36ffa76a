package usecase_test

import (
	"context"
	"errors"
	"testing"

	"fcp-bot-service/internal/domain"
	"fcp-bot-service/internal/mocks"
	"fcp-bot-service/internal/repository/memory"
	"fcp-bot-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNagUseCase_NoProposals(t *testing.T) {
	f := newFixture(t)

	signals, err := f.nag.Evaluate(f.ctx)

	require.NoError(t, err)
	assert.Empty(t, signals)
}

func TestNagUseCase_ReadyOnlyWhenAllReviewedAndResolved(t *testing.T) {
	f := newFixture(t)
	f.post(f.incoming("alice", "@rfcbot fcp close"))

	signals, err := f.nag.Evaluate(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, signals, "reviews outstanding")

	f.post(f.incoming("alice", "@rfcbot reviewed"), f.incoming("bob", "@rfcbot reviewed"))

	signals, err = f.nag.Evaluate(f.ctx)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, domain.DispositionClose, signals[0].Disposition)
	assert.Equal(t, repoRFCs, signals[0].Repository)
	assert.Equal(t, int32(1), signals[0].IssueNumber)
	assert.True(t, signals[0].AutoClose)
	assert.False(t, signals[0].AutoPostpone)

	// Новое возражение убирает предложение из готовых
	f.post(f.incoming("bob", "@rfcbot concern wait"))
	signals, err = f.nag.Evaluate(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, signals)

	f.post(f.incoming("bob", "@rfcbot resolved wait"))
	signals, err = f.nag.Evaluate(f.ctx)
	require.NoError(t, err)
	assert.Len(t, signals, 1)
}

func TestNagUseCase_DoesNotMutateState(t *testing.T) {
	f := newFixture(t)
	f.post(f.incoming("alice", "@rfcbot fcp merge"), f.incoming("bob", "@rfcbot concern x"))
	before := f.status()

	for i := 0; i < 3; i++ {
		_, err := f.nag.Evaluate(f.ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, before, f.status())
}

func TestNagUseCase_AutoActionFlags(t *testing.T) {
	testCases := []struct {
		name         string
		repository   string
		disposition  domain.Disposition
		autoClose    bool
		autoPostpone bool
	}{
		{name: "close allowed", repository: repoRFCs, disposition: domain.DispositionClose, autoClose: true},
		{name: "postpone not allowed", repository: repoRFCs, disposition: domain.DispositionPostpone},
		{name: "close not allowed", repository: repoRust, disposition: domain.DispositionClose},
		{name: "postpone allowed", repository: repoRust, disposition: domain.DispositionPostpone, autoPostpone: true},
		{name: "merge never auto", repository: repoRust, disposition: domain.DispositionMerge},
		{name: "unknown repository", repository: "someone/else", disposition: domain.DispositionClose},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			issue, err := f.store.Issues().Upsert(ctx, &domain.Issue{Repository: tc.repository, Number: 7})
			require.NoError(t, err)
			_, err = f.store.Proposals().CreateProposal(ctx, &domain.Proposal{
				IssueID:     issue.ID,
				InitiatorID: 1,
				Disposition: tc.disposition,
			}, nil)
			require.NoError(t, err)

			signals, err := f.nag.Evaluate(ctx)
			require.NoError(t, err)
			require.Len(t, signals, 1)
			assert.Equal(t, tc.autoClose, signals[0].AutoClose)
			assert.Equal(t, tc.autoPostpone, signals[0].AutoPostpone)
		})
	}
}

func TestNagUseCase_IssueLookupErrorPropagates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Users().Upsert(ctx, &domain.GitHubUser{ID: 1, Login: "alice"}))
	issue, err := store.Issues().Upsert(ctx, &domain.Issue{Repository: repoRFCs, Number: 1})
	require.NoError(t, err)
	_, err = store.Proposals().CreateProposal(ctx, &domain.Proposal{IssueID: issue.ID, InitiatorID: 1, Disposition: domain.DispositionMerge}, nil)
	require.NoError(t, err)

	issueRepo := &mocks.IssueRepository{}
	boom := errors.New("db down")
	issueRepo.On("GetByID", ctx, issue.ID).Return(nil, boom)

	f := newFixture(t)
	uc := usecase.NewNagUseCase(store.Proposals(), issueRepo, f.bot)

	_, err = uc.Evaluate(ctx)
	assert.ErrorIs(t, err, boom)
	issueRepo.AssertExpectations(t)
}
