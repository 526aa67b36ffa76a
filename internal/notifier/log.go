package notifier

import (
	"context"

	"fcp-bot-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// LogNotifier пишет намерения и сигналы в лог. Используется без REDIS_ADDR.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) PublishIntents(_ context.Context, intents []domain.Intent) error {
	for _, in := range intents {
		n.logger.WithFields(logrus.Fields{
			"kind":            in.Kind,
			"issue_id":        in.IssueID,
			"comment_id":      in.CommentID,
			"author":          in.AuthorLogin,
			"disposition":     in.Disposition,
			"concern":         in.ConcernName,
			"reviewers":       in.Reviewers,
			"requested_login": in.RequestedLogin,
		}).Info("FCP intent")
	}
	return nil
}

func (n *LogNotifier) PublishFinalize(_ context.Context, signals []*domain.FinalizeSignal) error {
	for _, s := range signals {
		n.logger.WithFields(logrus.Fields{
			"proposal_id":   s.ProposalID,
			"repository":    s.Repository,
			"issue_number":  s.IssueNumber,
			"disposition":   s.Disposition,
			"auto_close":    s.AutoClose,
			"auto_postpone": s.AutoPostpone,
		}).Info("FCP ready to finalize")
	}
	return nil
}

var (
	_ domain.Notifier = (*LogNotifier)(nil)
	_ domain.Notifier = (*RedisNotifier)(nil)
)
