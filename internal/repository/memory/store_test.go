package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fcp-bot-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	issue *domain.Issue
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewStore()

	for _, u := range []domain.GitHubUser{{ID: 1, Login: "alice"}, {ID: 2, Login: "bob"}, {ID: 3, Login: "carol"}} {
		s.Require().NoError(s.store.Users().Upsert(s.ctx, &u))
	}

	issue, err := s.store.Issues().Upsert(s.ctx, &domain.Issue{
		Repository: "rust-lang/rfcs",
		Number:     42,
		Labels:     []string{"T-lang"},
	})
	s.Require().NoError(err)
	s.issue = issue

	s.Require().NoError(s.store.Comments().Create(s.ctx, &domain.Comment{
		ID: 100, IssueID: issue.ID, UserID: 1, Body: "@rfcbot fcp merge", CreatedAt: time.Now(),
	}))
}

func (s *StoreTestSuite) createProposal(reviewers ...int64) *domain.Proposal {
	p, err := s.store.Proposals().CreateProposal(s.ctx, &domain.Proposal{
		IssueID:             s.issue.ID,
		InitiatorID:         1,
		InitiatingCommentID: 100,
		Disposition:         domain.DispositionMerge,
	}, reviewers)
	s.Require().NoError(err)
	return p
}

func (s *StoreTestSuite) TestIssueUpsert_SameKeyKeepsID() {
	again, err := s.store.Issues().Upsert(s.ctx, &domain.Issue{
		Repository: "rust-lang/rfcs",
		Number:     42,
		Labels:     []string{"T-libs-api", "T-lang"},
	})
	s.Require().NoError(err)
	s.Equal(s.issue.ID, again.ID)

	loaded, err := s.store.Issues().GetByID(s.ctx, s.issue.ID)
	s.Require().NoError(err)
	s.Equal([]string{"T-libs-api", "T-lang"}, loaded.Labels)
}

func (s *StoreTestSuite) TestUserUpsert_LoginChange() {
	s.Require().NoError(s.store.Users().Upsert(s.ctx, &domain.GitHubUser{ID: 1, Login: "alice2"}))

	_, err := s.store.Users().GetByLogin(s.ctx, "alice")
	s.ErrorIs(err, domain.ErrUserNotFound)

	user, err := s.store.Users().GetByLogin(s.ctx, "alice2")
	s.Require().NoError(err)
	s.Equal(int64(1), user.ID)
}

func (s *StoreTestSuite) TestGetByLogins_SkipsUnknown() {
	users, err := s.store.Users().GetByLogins(s.ctx, []string{"carol", "ghost", "alice", "alice"})
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Login)
	s.Equal("carol", users[1].Login)
}

func (s *StoreTestSuite) TestCommentCreate_Redelivery() {
	comment := &domain.Comment{ID: 100, IssueID: s.issue.ID, UserID: 2, Body: "changed"}
	s.NoError(s.store.Comments().Create(s.ctx, comment))
}

func (s *StoreTestSuite) TestCreateProposal_AtMostOnePerIssue() {
	s.createProposal(1, 2)

	_, err := s.store.Proposals().CreateProposal(s.ctx, &domain.Proposal{
		IssueID:             s.issue.ID,
		InitiatorID:         2,
		InitiatingCommentID: 100,
		Disposition:         domain.DispositionClose,
	}, nil)
	s.ErrorIs(err, domain.ErrProposalAlreadyExists)

	proposals, err := s.store.Proposals().ListActiveProposals(s.ctx)
	s.Require().NoError(err)
	s.Len(proposals, 1)
}

func (s *StoreTestSuite) TestCreateProposal_DuplicateReviewersIgnored() {
	p := s.createProposal(1, 2, 2)

	reviews, err := s.store.Proposals().ListReviewRequests(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Len(reviews, 2)
}

func (s *StoreTestSuite) TestDeleteProposal_CascadesButKeepsFeedback() {
	repo := s.store.Proposals()
	p := s.createProposal(1, 2)

	_, err := repo.CreateConcern(s.ctx, &domain.Concern{ProposalID: p.ID, InitiatorID: 2, Name: "naming"})
	s.Require().NoError(err)
	_, err = repo.CreateFeedbackRequest(s.ctx, &domain.FeedbackRequest{IssueID: s.issue.ID, InitiatorID: 1, RequestedID: 3})
	s.Require().NoError(err)

	s.Require().NoError(repo.DeleteProposal(s.ctx, p.ID))

	_, err = repo.GetActiveProposal(s.ctx, s.issue.ID)
	s.ErrorIs(err, domain.ErrProposalNotFound)

	reviews, err := repo.ListReviewRequests(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Empty(reviews)

	concerns, err := repo.ListConcerns(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Empty(concerns)

	feedback, err := repo.ListOutstandingFeedbackRequests(s.ctx, s.issue.ID)
	s.Require().NoError(err)
	s.Len(feedback, 1)

	s.ErrorIs(repo.DeleteProposal(s.ctx, p.ID), domain.ErrProposalNotFound)
}

func (s *StoreTestSuite) TestWithIssueLock_RollbackOnError() {
	boom := errors.New("boom")

	err := s.store.Proposals().WithIssueLock(s.ctx, s.issue.ID, func(store domain.ProposalStore) error {
		_, err := store.CreateProposal(s.ctx, &domain.Proposal{
			IssueID:             s.issue.ID,
			InitiatorID:         1,
			InitiatingCommentID: 100,
			Disposition:         domain.DispositionPostpone,
		}, []int64{1})
		s.Require().NoError(err)
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.store.Proposals().GetActiveProposal(s.ctx, s.issue.ID)
	s.ErrorIs(err, domain.ErrProposalNotFound)
}

func (s *StoreTestSuite) TestWithIssueLock_UnknownIssue() {
	err := s.store.Proposals().WithIssueLock(s.ctx, 999, func(domain.ProposalStore) error {
		s.Fail("fn must not run")
		return nil
	})
	s.ErrorIs(err, domain.ErrIssueNotFound)
}

func (s *StoreTestSuite) TestWithIssueLock_ConcurrentProposeCreatesOne() {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.store.Proposals().WithIssueLock(s.ctx, s.issue.ID, func(store domain.ProposalStore) error {
				if _, err := store.GetActiveProposal(s.ctx, s.issue.ID); err == nil {
					return nil
				}
				_, err := store.CreateProposal(s.ctx, &domain.Proposal{
					IssueID:             s.issue.ID,
					InitiatorID:         1,
					InitiatingCommentID: 100,
					Disposition:         domain.DispositionMerge,
				}, nil)
				return err
			})
		}()
	}
	wg.Wait()

	proposals, err := s.store.Proposals().ListActiveProposals(s.ctx)
	s.Require().NoError(err)
	s.Len(proposals, 1)
}

func (s *StoreTestSuite) TestFulfillFeedbackRequest_FirstMatchWins() {
	repo := s.store.Proposals()
	fr, err := repo.CreateFeedbackRequest(s.ctx, &domain.FeedbackRequest{IssueID: s.issue.ID, InitiatorID: 1, RequestedID: 3})
	s.Require().NoError(err)

	s.Require().NoError(repo.FulfillFeedbackRequest(s.ctx, fr.ID, 200))
	s.Require().NoError(repo.FulfillFeedbackRequest(s.ctx, fr.ID, 300))

	loaded, err := repo.GetFeedbackRequest(s.ctx, s.issue.ID, 3)
	s.Require().NoError(err)
	s.Require().NotNil(loaded.FeedbackCommentID)
	s.Equal(int64(200), *loaded.FeedbackCommentID)
}

func (s *StoreTestSuite) TestReturnedEntitiesAreCopies() {
	p := s.createProposal(1)
	reviews, err := s.store.Proposals().ListReviewRequests(s.ctx, p.ID)
	s.Require().NoError(err)
	reviews[0].ReviewedCommentID = idRef(1)

	fresh, err := s.store.Proposals().GetReviewRequest(s.ctx, p.ID, 1)
	s.Require().NoError(err)
	s.False(fresh.Reviewed())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestConcernNamesAreExactKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Users().Upsert(ctx, &domain.GitHubUser{ID: 1, Login: "alice"}))
	issue, err := store.Issues().Upsert(ctx, &domain.Issue{Repository: "r", Number: 1})
	require.NoError(t, err)

	p, err := store.Proposals().CreateProposal(ctx, &domain.Proposal{IssueID: issue.ID, InitiatorID: 1, Disposition: domain.DispositionMerge}, nil)
	require.NoError(t, err)

	_, err = store.Proposals().CreateConcern(ctx, &domain.Concern{ProposalID: p.ID, InitiatorID: 1, Name: "Naming"})
	require.NoError(t, err)
	_, err = store.Proposals().CreateConcern(ctx, &domain.Concern{ProposalID: p.ID, InitiatorID: 1, Name: "naming"})
	require.NoError(t, err)
	_, err = store.Proposals().CreateConcern(ctx, &domain.Concern{ProposalID: p.ID, InitiatorID: 1, Name: "naming"})
	assert.Error(t, err)

	_, err = store.Proposals().GetConcern(ctx, p.ID, "NAMING")
	assert.ErrorIs(t, err, domain.ErrConcernNotFound)
}
