package domain

import "context"

// IntentKind - вид уведомления, которое нужно опубликовать в issue.
type IntentKind string

const (
	IntentProposalCreated   IntentKind = "proposal_created"
	IntentProposalCancelled IntentKind = "proposal_cancelled"
	IntentConcernRaised     IntentKind = "concern_raised"
	IntentConcernResolved   IntentKind = "concern_resolved"
	IntentFeedbackRequested IntentKind = "feedback_requested"
)

// Intent - намерение опубликовать комментарий. Ядро только формирует его.
type Intent struct {
	Kind        IntentKind
	IssueID     int64
	CommentID   int64
	AuthorLogin string
	Disposition Disposition
	ConcernName string
	// Reviewers заполняется для proposal_created, RequestedLogin - для feedback_requested.
	Reviewers      []string
	RequestedLogin string
}

// FinalizeSignal - предложение готово к завершению FCP.
// Получатель обязан перепроверить состояние перед действием.
type FinalizeSignal struct {
	ProposalID   int64
	IssueID      int64
	Repository   string
	IssueNumber  int32
	Disposition  Disposition
	AutoClose    bool
	AutoPostpone bool
}

// Notifier - внешний получатель намерений и сигналов.
type Notifier interface {
	PublishIntents(ctx context.Context, intents []Intent) error
	PublishFinalize(ctx context.Context, signals []*FinalizeSignal) error
}

// BatchResult - итог обработки пачки комментариев.
type BatchResult struct {
	Processed int
	Commands  int
	Dropped   int
	Signals   []*FinalizeSignal
}
