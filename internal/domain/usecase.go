package domain

import "context"

// AuthUseCase решает, кто может отдавать команды боту на issue.
type AuthUseCase interface {
	AuthorizedMembers(ctx context.Context, issue *Issue) ([]*GitHubUser, error)
	IsAuthorized(ctx context.Context, user *GitHubUser, issue *Issue) (bool, error)
}

// ProcessUseCase применяет разобранную и разрешенную команду.
type ProcessUseCase interface {
	Apply(ctx context.Context, cmd Command, author *GitHubUser, issue *Issue, comment *Comment, members []*GitHubUser) ([]Intent, error)
}

// FeedbackUseCase закрывает запросы обратной связи ответами запрошенных пользователей.
type FeedbackUseCase interface {
	Resolve(ctx context.Context, author *GitHubUser, issue *Issue, comment *Comment) error
}

// NagUseCase находит предложения, готовые к завершению.
type NagUseCase interface {
	Evaluate(ctx context.Context) ([]*FinalizeSignal, error)
}

// CommentUseCase определяет обработку пачек новых комментариев.
type CommentUseCase interface {
	RecordComments(ctx context.Context, incoming []*IncomingComment) ([]*Comment, error)
	ProcessComments(ctx context.Context, comments []*Comment) (*BatchResult, error)
}

// ProposalUseCase определяет чтение состояния FCP.
type ProposalUseCase interface {
	GetStatus(ctx context.Context, issueID int64) (*ProposalStatus, error)
}

// TeamUseCase определяет проверку конфигурации команд.
type TeamUseCase interface {
	ValidateTeams(ctx context.Context) (*TeamValidationResult, error)
}
