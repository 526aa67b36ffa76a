package config

import (
	"fmt"
	"os"
	"sort"

	"fcp-bot-service/internal/domain"

	"github.com/BurntSushi/toml"
)

// BotConfig - содержимое rfcbot.toml. Читается один раз при старте и дальше не меняется.
type BotConfig struct {
	ProhibitedReactions map[string]ReactionBehavior `toml:"prohibited_reactions"`
	FcpBehaviors        map[string]FcpBehavior      `toml:"fcp_behaviors"`
	TeamsByLabel        map[string]TeamConfig       `toml:"teams"`
}

// ReactionBehavior задает запрещенные реакции отдельно для issue и для комментариев.
type ReactionBehavior struct {
	Issue   ProhibitedReactions `toml:"issue"`
	Comment ProhibitedReactions `toml:"comment"`
}

type ProhibitedReactions struct {
	UpVote   bool `toml:"up_vote"`
	DownVote bool `toml:"down_vote"`
	Laugh    bool `toml:"laugh"`
	Hooray   bool `toml:"hooray"`
	Confused bool `toml:"confused"`
	Heart    bool `toml:"heart"`
}

// IsProhibited сообщает, запрещена ли реакция. Неизвестная реакция всегда разрешена.
func (p ProhibitedReactions) IsProhibited(reaction domain.Reaction) bool {
	switch reaction {
	case domain.ReactionUpvote:
		return p.UpVote
	case domain.ReactionDownvote:
		return p.DownVote
	case domain.ReactionLaugh:
		return p.Laugh
	case domain.ReactionHooray:
		return p.Hooray
	case domain.ReactionConfused:
		return p.Confused
	case domain.ReactionHeart:
		return p.Heart
	default:
		return false
	}
}

// FcpBehavior - разрешено ли автоматически закрывать/откладывать issue после FCP.
type FcpBehavior struct {
	Close    bool `toml:"close"`
	Postpone bool `toml:"postpone"`
}

// TeamConfig - команда из конфигурации. Поля name и ping допускаются, но не используются.
type TeamConfig struct {
	Name    string   `toml:"name"`
	Ping    string   `toml:"ping"`
	Members []string `toml:"members"`
}

var (
	_ domain.TeamDirectory  = (*BotConfig)(nil)
	_ domain.BehaviorConfig = (*BotConfig)(nil)
)

// LoadBotConfig читает rfcbot.toml с диска.
func LoadBotConfig(path string) (*BotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot config %s: %w", path, err)
	}
	return ParseBotConfig(data)
}

// ParseBotConfig разбирает TOML-документ конфигурации бота.
func ParseBotConfig(data []byte) (*BotConfig, error) {
	var cfg BotConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bot config: %w", err)
	}
	return &cfg, nil
}

// TeamLabels возвращает метки всех команд в алфавитном порядке.
func (c *BotConfig) TeamLabels() []string {
	labels := make([]string, 0, len(c.TeamsByLabel))
	for label := range c.TeamsByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Teams возвращает все команды в порядке меток.
func (c *BotConfig) Teams() []*domain.Team {
	teams := make([]*domain.Team, 0, len(c.TeamsByLabel))
	for _, label := range c.TeamLabels() {
		teams = append(teams, &domain.Team{
			Label:        label,
			MemberLogins: append([]string(nil), c.TeamsByLabel[label].Members...),
		})
	}
	return teams
}

// MemberLogins объединяет участников всех команд, чья метка точно совпадает с одной из меток issue.
func (c *BotConfig) MemberLogins(labels []string) []string {
	seen := make(map[string]struct{})
	var logins []string
	for _, label := range labels {
		team, ok := c.TeamsByLabel[label]
		if !ok {
			continue
		}
		for _, login := range team.Members {
			if _, dup := seen[login]; dup {
				continue
			}
			seen[login] = struct{}{}
			logins = append(logins, login)
		}
	}
	return logins
}

// ShouldAutoClose - можно ли автоматически закрыть issue после FCP в этом репозитории?
func (c *BotConfig) ShouldAutoClose(repository string) bool {
	return c.FcpBehaviors[repository].Close
}

// ShouldAutoPostpone - можно ли автоматически отложить issue после FCP в этом репозитории?
func (c *BotConfig) ShouldAutoPostpone(repository string) bool {
	return c.FcpBehaviors[repository].Postpone
}

// IsIssueReactionProhibited - запрещена ли реакция на issue / PR этого репозитория?
func (c *BotConfig) IsIssueReactionProhibited(repository string, reaction domain.Reaction) bool {
	return c.ProhibitedReactions[repository].Issue.IsProhibited(reaction)
}

// IsCommentReactionProhibited - запрещена ли реакция на комментарии этого репозитория?
func (c *BotConfig) IsCommentReactionProhibited(repository string, reaction domain.Reaction) bool {
	return c.ProhibitedReactions[repository].Comment.IsProhibited(reaction)
}
