package domain

// Team представляет команду из конфигурации бота: метка issue и логины участников.
type Team struct {
	Label        string
	MemberLogins []string
}

// TeamValidationResult содержит логины участников команд, которых нет в базе.
type TeamValidationResult struct {
	TeamsChecked  int
	UnknownLogins map[string][]string
}

// Reaction - тип реакции на issue или комментарий.
type Reaction string

const (
	ReactionUnknown  Reaction = "unknown"
	ReactionUpvote   Reaction = "+1"
	ReactionDownvote Reaction = "-1"
	ReactionLaugh    Reaction = "laugh"
	ReactionHooray   Reaction = "hooray"
	ReactionConfused Reaction = "confused"
	ReactionHeart    Reaction = "heart"
)

// Reactions перечисляет все известные реакции.
var Reactions = []Reaction{
	ReactionUpvote, ReactionDownvote, ReactionLaugh,
	ReactionHooray, ReactionConfused, ReactionHeart,
}

// TeamDirectory отображает метки issue на логины участников команд.
type TeamDirectory interface {
	Teams() []*Team
	MemberLogins(labels []string) []string
}

// BehaviorConfig описывает поведение бота для конкретного репозитория.
type BehaviorConfig interface {
	ShouldAutoClose(repository string) bool
	ShouldAutoPostpone(repository string) bool
	IsIssueReactionProhibited(repository string, reaction Reaction) bool
	IsCommentReactionProhibited(repository string, reaction Reaction) bool
}
