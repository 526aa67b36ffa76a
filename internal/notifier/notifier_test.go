package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fcp-bot-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := NewLogNotifier(logger)

	err := n.PublishIntents(context.Background(), []domain.Intent{
		{Kind: domain.IntentProposalCreated, IssueID: 1, AuthorLogin: "alice", Disposition: domain.DispositionMerge},
		{Kind: domain.IntentConcernRaised, IssueID: 1, AuthorLogin: "bob", ConcernName: "perf"},
	})
	require.NoError(t, err)

	err = n.PublishFinalize(context.Background(), []*domain.FinalizeSignal{
		{ProposalID: 7, Repository: "rust-lang/rfcs", IssueNumber: 12, Disposition: domain.DispositionClose, AutoClose: true},
	})
	require.NoError(t, err)

	require.Len(t, hook.AllEntries(), 3)
	assert.Equal(t, domain.IntentConcernRaised, hook.AllEntries()[1].Data["kind"])
	assert.Equal(t, "FCP ready to finalize", hook.LastEntry().Message)
	assert.Equal(t, true, hook.LastEntry().Data["auto_close"])
}

func TestRedisNotifier_StreamName(t *testing.T) {
	assert.Equal(t, "fcp:intents", NewRedisNotifier(nil, "fcp", logrus.New()).Stream(intentsStream))
	assert.Equal(t, "finalize", NewRedisNotifier(nil, "", logrus.New()).Stream(finalizeStream))
}

func TestRedisNotifier_EmptyBatchSkipsRedis(t *testing.T) {
	// nil-клиент упал бы при обращении
	n := NewRedisNotifier(nil, "fcp", logrus.New())
	assert.NoError(t, n.PublishIntents(context.Background(), nil))
	assert.NoError(t, n.PublishFinalize(context.Background(), nil))
}

func TestRedisNotifier_Streams(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() { _ = rdb.Close() })

	n := NewRedisNotifier(rdb, "fcp-test", logrus.New())

	err = n.PublishIntents(ctx, []domain.Intent{{
		Kind:        domain.IntentProposalCreated,
		IssueID:     3,
		CommentID:   30,
		AuthorLogin: "alice",
		Disposition: domain.DispositionPostpone,
		Reviewers:   []string{"alice", "bob"},
	}})
	require.NoError(t, err)

	err = n.PublishFinalize(ctx, []*domain.FinalizeSignal{{
		ProposalID:   1,
		IssueID:      3,
		Repository:   "rust-lang/rust",
		IssueNumber:  99,
		Disposition:  domain.DispositionPostpone,
		AutoPostpone: true,
	}})
	require.NoError(t, err)

	intents, err := rdb.XRange(ctx, "fcp-test:intents", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, "proposal_created", intents[0].Values["kind"])

	var msg intentMessage
	require.NoError(t, json.Unmarshal([]byte(intents[0].Values["payload"].(string)), &msg))
	assert.Equal(t, []string{"alice", "bob"}, msg.Reviewers)
	assert.Equal(t, domain.DispositionPostpone, msg.Disposition)

	finalize, err := rdb.XRange(ctx, "fcp-test:finalize", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, finalize, 1)

	var signal finalizeMessage
	require.NoError(t, json.Unmarshal([]byte(finalize[0].Values["payload"].(string)), &signal))
	assert.True(t, signal.AutoPostpone)
	assert.Equal(t, int32(99), signal.IssueNumber)
}
