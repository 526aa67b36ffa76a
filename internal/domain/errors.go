package domain

import "errors"

// Ошибки разбора команд. Это не ошибки обработки: комментарий просто не является командой.
var (
	ErrNotAddressed      = errors.New("comment is not addressed to the bot")
	ErrUnknownCommand    = errors.New("unknown bot command")
	ErrMalformedArgument = errors.New("malformed command argument")
)

// Domain errors (для бизнес-логики)
var (
	// Lookup errors
	ErrUserNotFound            = errors.New("user not found")
	ErrIssueNotFound           = errors.New("issue not found")
	ErrProposalNotFound        = errors.New("fcp proposal not found")
	ErrReviewRequestNotFound   = errors.New("review request not found")
	ErrConcernNotFound         = errors.New("concern not found")
	ErrFeedbackRequestNotFound = errors.New("feedback request not found")

	// Invariant errors
	ErrProposalAlreadyExists = errors.New("fcp proposal already exists for issue")

	// Validation errors
	ErrInvalidIssueID     = errors.New("invalid issue id")
	ErrInvalidRepository  = errors.New("invalid repository")
	ErrInvalidComment     = errors.New("invalid comment")
	ErrEmptyCommentsBatch = errors.New("comments batch is empty")
)

// IsParseError сообщает, что ошибка относится к разбору команды.
func IsParseError(err error) bool {
	return errors.Is(err, ErrNotAddressed) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMalformedArgument)
}

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrUserNotFound:          {Code: "NOT_FOUND", Message: "user not found"},
	ErrIssueNotFound:         {Code: "NOT_FOUND", Message: "issue not found"},
	ErrProposalNotFound:      {Code: "NOT_FOUND", Message: "no active fcp proposal"},
	ErrProposalAlreadyExists: {Code: "PROPOSAL_EXISTS", Message: "fcp proposal already exists"},
	ErrInvalidIssueID:        {Code: "INVALID_REQUEST", Message: "issue_id must be positive"},
	ErrInvalidRepository:     {Code: "INVALID_REQUEST", Message: "repository is required"},
	ErrInvalidComment:        {Code: "INVALID_REQUEST", Message: "comment_id, author and issue are required"},
	ErrEmptyCommentsBatch:    {Code: "INVALID_REQUEST", Message: "comments must not be empty"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for target, httpErr := range ErrorMapping {
		if errors.Is(err, target) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
