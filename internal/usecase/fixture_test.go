package usecase_test

import (
	"context"
	"testing"
	"time"

	"fcp-bot-service/internal/command"
	"fcp-bot-service/internal/config"
	"fcp-bot-service/internal/domain"
	"fcp-bot-service/internal/mocks"
	"fcp-bot-service/internal/repository/memory"
	"fcp-bot-service/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBotConfig = `
[fcp_behaviors."rust-lang/rfcs"]
close = true
postpone = false

[fcp_behaviors."rust-lang/rust"]
close = false
postpone = true

[teams.T-lang]
members = ["alice", "bob"]

[teams.T-libs]
members = ["bob", "carol"]
`

const (
	repoRFCs = "rust-lang/rfcs"
	repoRust = "rust-lang/rust"
)

var testUsers = map[string]int64{
	"alice": 1,
	"bob":   2,
	"carol": 3,
	"dave":  4,
	"erin":  5,
}

type fixture struct {
	t        *testing.T
	ctx      context.Context
	store    *memory.Store
	bot      *config.BotConfig
	notifier *mocks.Notifier
	logHook  *test.Hook

	auth     domain.AuthUseCase
	process  domain.ProcessUseCase
	nag      domain.NagUseCase
	comments domain.CommentUseCase

	nextCommentID int64
	clock         time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bot, err := config.ParseBotConfig([]byte(testBotConfig))
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	store := memory.NewStore()
	ctx := context.Background()
	for login, id := range testUsers {
		require.NoError(t, store.Users().Upsert(ctx, &domain.GitHubUser{ID: id, Login: login}))
	}

	notifier := &mocks.Notifier{}
	notifier.On("PublishIntents", mock.Anything, mock.Anything).Return(nil).Maybe()
	notifier.On("PublishFinalize", mock.Anything, mock.Anything).Return(nil).Maybe()

	auth := usecase.NewAuthUseCase(bot, store.Users())
	process := usecase.NewProcessUseCase(store.Proposals(), store.Users())
	nag := usecase.NewNagUseCase(store.Proposals(), store.Issues(), bot)

	comments := usecase.NewCommentUseCase(usecase.CommentUseCaseDeps{
		UserRepo:    store.Users(),
		IssueRepo:   store.Issues(),
		CommentRepo: store.Comments(),
		Parser:      command.NewParser(""),
		Auth:        auth,
		Process:     process,
		Feedback:    usecase.NewFeedbackUseCase(store.Proposals()),
		Nag:         nag,
		Notifier:    notifier,
		Logger:      logger,
	})

	return &fixture{
		t:             t,
		ctx:           ctx,
		store:         store,
		bot:           bot,
		notifier:      notifier,
		logHook:       hook,
		auth:          auth,
		process:       process,
		nag:           nag,
		comments:      comments,
		nextCommentID: 1000,
		clock:         time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// incoming строит входящий комментарий на issue #1 в rust-lang/rfcs с меткой T-lang.
func (f *fixture) incoming(login, body string) *domain.IncomingComment {
	f.nextCommentID++
	f.clock = f.clock.Add(time.Minute)

	return &domain.IncomingComment{
		CommentID:  f.nextCommentID,
		Repository: repoRFCs,
		Number:     1,
		Labels:     []string{"T-lang"},
		Author:     domain.GitHubUser{ID: testUsers[login], Login: login},
		Body:       body,
		CreatedAt:  f.clock,
	}
}

func (f *fixture) record(incoming ...*domain.IncomingComment) []*domain.Comment {
	f.t.Helper()
	comments, err := f.comments.RecordComments(f.ctx, incoming)
	require.NoError(f.t, err)
	return comments
}

// post записывает и обрабатывает комментарии одной пачкой.
func (f *fixture) post(incoming ...*domain.IncomingComment) *domain.BatchResult {
	f.t.Helper()
	result, err := f.comments.ProcessComments(f.ctx, f.record(incoming...))
	require.NoError(f.t, err)
	return result
}

func (f *fixture) issueID() int64 {
	f.t.Helper()
	issue, err := f.store.Issues().Upsert(f.ctx, &domain.Issue{Repository: repoRFCs, Number: 1, Labels: []string{"T-lang"}})
	require.NoError(f.t, err)
	return issue.ID
}

func (f *fixture) status() *domain.ProposalStatus {
	f.t.Helper()
	status, err := usecase.NewProposalUseCase(f.store.Proposals()).GetStatus(f.ctx, f.issueID())
	require.NoError(f.t, err)
	return status
}

func (f *fixture) noProposal() bool {
	_, err := f.store.Proposals().GetActiveProposal(f.ctx, f.issueID())
	return err != nil
}

func user(login string) *domain.GitHubUser {
	return &domain.GitHubUser{ID: testUsers[login], Login: login}
}
