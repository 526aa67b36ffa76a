// Package notifier доставляет намерения и сигналы завершения FCP внешним получателям.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"fcp-bot-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	intentsStream  = "intents"
	finalizeStream = "finalize"
)

// RedisNotifier пишет намерения и сигналы в Redis Streams <prefix>:intents и <prefix>:finalize.
type RedisNotifier struct {
	rdb    redis.Cmdable
	prefix string
	logger *logrus.Logger
}

// NewRedisNotifier создает новый экземпляр RedisNotifier.
func NewRedisNotifier(rdb redis.Cmdable, prefix string, logger *logrus.Logger) *RedisNotifier {
	return &RedisNotifier{
		rdb:    rdb,
		prefix: prefix,
		logger: logger,
	}
}

// Stream возвращает полное имя стрима.
func (n *RedisNotifier) Stream(name string) string {
	if n.prefix == "" {
		return name
	}
	return n.prefix + ":" + name
}

type intentMessage struct {
	Kind           domain.IntentKind  `json:"kind"`
	IssueID        int64              `json:"issue_id"`
	CommentID      int64              `json:"comment_id"`
	Author         string             `json:"author"`
	Disposition    domain.Disposition `json:"disposition,omitempty"`
	ConcernName    string             `json:"concern_name,omitempty"`
	Reviewers      []string           `json:"reviewers,omitempty"`
	RequestedLogin string             `json:"requested_login,omitempty"`
}

type finalizeMessage struct {
	ProposalID   int64              `json:"proposal_id"`
	IssueID      int64              `json:"issue_id"`
	Repository   string             `json:"repository"`
	IssueNumber  int32              `json:"issue_number"`
	Disposition  domain.Disposition `json:"disposition"`
	AutoClose    bool               `json:"auto_close"`
	AutoPostpone bool               `json:"auto_postpone"`
}

// PublishIntents добавляет все намерения одним пайплайном.
func (n *RedisNotifier) PublishIntents(ctx context.Context, intents []domain.Intent) error {
	if len(intents) == 0 {
		return nil
	}

	stream := n.Stream(intentsStream)
	pipe := n.rdb.Pipeline()
	for _, in := range intents {
		payload, err := json.Marshal(intentMessage{
			Kind:           in.Kind,
			IssueID:        in.IssueID,
			CommentID:      in.CommentID,
			Author:         in.AuthorLogin,
			Disposition:    in.Disposition,
			ConcernName:    in.ConcernName,
			Reviewers:      in.Reviewers,
			RequestedLogin: in.RequestedLogin,
		})
		if err != nil {
			return fmt.Errorf("failed to encode intent: %w", err)
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: stream,
			Values: map[string]interface{}{
				"kind":     string(in.Kind),
				"issue_id": in.IssueID,
				"payload":  payload,
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add to stream %s: %w", stream, err)
	}

	n.logger.WithFields(logrus.Fields{
		"stream": stream,
		"count":  len(intents),
	}).Debug("Intents published")
	return nil
}

// PublishFinalize добавляет сигналы готовых к завершению предложений.
func (n *RedisNotifier) PublishFinalize(ctx context.Context, signals []*domain.FinalizeSignal) error {
	if len(signals) == 0 {
		return nil
	}

	stream := n.Stream(finalizeStream)
	pipe := n.rdb.Pipeline()
	for _, s := range signals {
		payload, err := json.Marshal(finalizeMessage{
			ProposalID:   s.ProposalID,
			IssueID:      s.IssueID,
			Repository:   s.Repository,
			IssueNumber:  s.IssueNumber,
			Disposition:  s.Disposition,
			AutoClose:    s.AutoClose,
			AutoPostpone: s.AutoPostpone,
		})
		if err != nil {
			return fmt.Errorf("failed to encode finalize signal: %w", err)
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: stream,
			Values: map[string]interface{}{
				"proposal_id": s.ProposalID,
				"issue_id":    s.IssueID,
				"payload":     payload,
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add to stream %s: %w", stream, err)
	}

	n.logger.WithFields(logrus.Fields{
		"stream": stream,
		"count":  len(signals),
	}).Debug("Finalize signals published")
	return nil
}
