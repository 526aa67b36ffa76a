package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"fcp-bot-service/internal/config"
	"fcp-bot-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotConfig = `
[prohibited_reactions]

[prohibited_reactions."foo-org/bar".issue]
down_vote = true
confused = true

[prohibited_reactions."foo-org/bar".comment]
down_vote = true
confused = false

[fcp_behaviors]

[fcp_behaviors."rust-lang/alpha"]
close = true
postpone = true

[fcp_behaviors."foobar/beta"]
close = false

[fcp_behaviors."bazquux/gamma"]
postpone = false

[fcp_behaviors."wibble/epsilon"]

[teams]

[teams.avengers]
name = "The Avengers"
ping = "marvel/avengers"
members = [
  "hulk",
  "thor",
  "thevision",
  "blackwidow",
  "spiderman",
  "captainamerica",
]

[teams.justice-league]
name = "Justice League of America"
ping = "dc-comics/justice-league"
members = [
  "superman",
  "wonderwoman",
  "aquaman",
  "batman",
  "theflash",
  "spiderman",
]
`

func TestParseBotConfig_Teams(t *testing.T) {
	cfg, err := config.ParseBotConfig([]byte(testBotConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"avengers", "justice-league"}, cfg.TeamLabels())

	teams := cfg.Teams()
	require.Len(t, teams, 2)
	assert.Equal(t, "avengers", teams[0].Label)
	assert.Equal(t, []string{"hulk", "thor", "thevision", "blackwidow", "spiderman", "captainamerica"}, teams[0].MemberLogins)
	assert.Equal(t, "justice-league", teams[1].Label)

	_, ok := cfg.TeamsByLabel["random"]
	assert.False(t, ok)
}

func TestParseBotConfig_MemberLogins(t *testing.T) {
	cfg, err := config.ParseBotConfig([]byte(testBotConfig))
	require.NoError(t, err)

	assert.Empty(t, cfg.MemberLogins(nil))
	assert.Empty(t, cfg.MemberLogins([]string{"T-lang", "Avengers"}))
	assert.Equal(t,
		[]string{"hulk", "thor", "thevision", "blackwidow", "spiderman", "captainamerica"},
		cfg.MemberLogins([]string{"bug", "avengers"}))

	// участник двух команд попадает в результат один раз
	logins := cfg.MemberLogins([]string{"avengers", "justice-league"})
	assert.Len(t, logins, 11)
	assert.ElementsMatch(t, []string{
		"hulk", "thor", "thevision", "blackwidow", "spiderman", "captainamerica",
		"superman", "wonderwoman", "aquaman", "batman", "theflash",
	}, logins)
}

func TestParseBotConfig_FcpBehaviors(t *testing.T) {
	cfg, err := config.ParseBotConfig([]byte(testBotConfig))
	require.NoError(t, err)

	assert.True(t, cfg.ShouldAutoClose("rust-lang/alpha"))
	assert.True(t, cfg.ShouldAutoPostpone("rust-lang/alpha"))
	assert.False(t, cfg.ShouldAutoClose("foobar/beta"))
	assert.False(t, cfg.ShouldAutoPostpone("foobar/beta"))
	assert.False(t, cfg.ShouldAutoClose("bazquux/gamma"))
	assert.False(t, cfg.ShouldAutoPostpone("bazquux/gamma"))
	assert.False(t, cfg.ShouldAutoClose("wibble/epsilon"))
	assert.False(t, cfg.ShouldAutoPostpone("wibble/epsilon"))
	assert.False(t, cfg.ShouldAutoClose("random"))
	assert.False(t, cfg.ShouldAutoPostpone("random"))
}

func TestParseBotConfig_ProhibitedReactions(t *testing.T) {
	cfg, err := config.ParseBotConfig([]byte(testBotConfig))
	require.NoError(t, err)

	assert.True(t, cfg.IsIssueReactionProhibited("foo-org/bar", domain.ReactionDownvote))
	assert.True(t, cfg.IsIssueReactionProhibited("foo-org/bar", domain.ReactionConfused))
	assert.False(t, cfg.IsIssueReactionProhibited("foo-org/bar", domain.ReactionHeart))
	assert.True(t, cfg.IsCommentReactionProhibited("foo-org/bar", domain.ReactionDownvote))
	assert.False(t, cfg.IsCommentReactionProhibited("foo-org/bar", domain.ReactionConfused))
	assert.False(t, cfg.IsCommentReactionProhibited("foo-org/bar", domain.ReactionLaugh))
	assert.False(t, cfg.IsIssueReactionProhibited("random", domain.ReactionUpvote))
	assert.False(t, cfg.IsIssueReactionProhibited("foo-org/bar", domain.ReactionUnknown))
}

func TestParseBotConfig_Empty(t *testing.T) {
	cfg, err := config.ParseBotConfig(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.TeamLabels())
	assert.Empty(t, cfg.MemberLogins([]string{"avengers"}))
	assert.False(t, cfg.ShouldAutoClose("rust-lang/alpha"))
	assert.False(t, cfg.IsCommentReactionProhibited("foo-org/bar", domain.ReactionHeart))
}

func TestParseBotConfig_Malformed(t *testing.T) {
	_, err := config.ParseBotConfig([]byte("[teams\nmembers = "))
	assert.Error(t, err)
}

func TestLoadBotConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfcbot.toml")
	require.NoError(t, os.WriteFile(path, []byte(testBotConfig), 0o600))

	cfg, err := config.LoadBotConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Teams(), 2)

	_, err = config.LoadBotConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadBotConfig_RepositoryExample(t *testing.T) {
	cfg, err := config.LoadBotConfig(filepath.Join("..", "..", "rfcbot.toml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.TeamLabels())
}
