package config_test

import (
	"testing"
	"time"

	"fcp-bot-service/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("BOT_MENTION", "")
	t.Setenv("NAG_INTERVAL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, config.StorageTypePostgres, cfg.StorageType)
	assert.Equal(t, "@rfcbot", cfg.BotMention)
	assert.Equal(t, 5*time.Minute, cfg.NagInterval)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "fcp", cfg.RedisStreamPrefix)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "Memory")
	t.Setenv("BOT_MENTION", "@fcpbot")
	t.Setenv("NAG_INTERVAL", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, config.StorageTypeMemory, cfg.StorageType)
	assert.Equal(t, "@fcpbot", cfg.BotMention)
	assert.Equal(t, 30*time.Second, cfg.NagInterval)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_BadDurationFallsBack(t *testing.T) {
	t.Setenv("NAG_INTERVAL", "soon")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, 5*time.Minute, cfg.NagInterval)
}
