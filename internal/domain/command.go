package domain

// Disposition - предлагаемый исход FCP.
type Disposition string

const (
	DispositionMerge    Disposition = "merge"
	DispositionClose    Disposition = "close"
	DispositionPostpone Disposition = "postpone"
)

// ParseDisposition возвращает Disposition по его строковому представлению.
func ParseDisposition(s string) (Disposition, bool) {
	switch d := Disposition(s); d {
	case DispositionMerge, DispositionClose, DispositionPostpone:
		return d, true
	}
	return "", false
}

// CommandKind - вид команды бота.
type CommandKind int

const (
	CommandFcpPropose CommandKind = iota + 1
	CommandFcpCancel
	CommandReviewed
	CommandNewConcern
	CommandResolveConcern
	CommandFeedbackRequest
)

func (k CommandKind) String() string {
	switch k {
	case CommandFcpPropose:
		return "fcp_propose"
	case CommandFcpCancel:
		return "fcp_cancel"
	case CommandReviewed:
		return "reviewed"
	case CommandNewConcern:
		return "concern"
	case CommandResolveConcern:
		return "resolved"
	case CommandFeedbackRequest:
		return "feedback_request"
	default:
		return "unknown"
	}
}

// Command - разобранная команда из комментария.
// Disposition заполнен только для FcpPropose, Arg - имя возражения или логин.
type Command struct {
	Kind        CommandKind
	Disposition Disposition
	Arg         string
}

func FcpPropose(d Disposition) Command   { return Command{Kind: CommandFcpPropose, Disposition: d} }
func FcpCancel() Command                 { return Command{Kind: CommandFcpCancel} }
func Reviewed() Command                  { return Command{Kind: CommandReviewed} }
func NewConcern(name string) Command     { return Command{Kind: CommandNewConcern, Arg: name} }
func ResolveConcern(name string) Command { return Command{Kind: CommandResolveConcern, Arg: name} }
func FeedbackRequestFor(login string) Command {
	return Command{Kind: CommandFeedbackRequest, Arg: login}
}

// CommandParser превращает текст комментария в команду.
type CommandParser interface {
	Parse(body string) (Command, error)
}
