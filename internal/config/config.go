package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageTypePostgres = "postgres"
	StorageTypeMemory   = "memory"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	StorageType string
	LogLevel    string

	BotMention    string
	BotConfigPath string

	RedisAddr         string
	RedisStreamPrefix string

	NagInterval time.Duration
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "fcp_bot"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		StorageType: strings.ToLower(getEnv("STORAGE_TYPE", StorageTypePostgres)),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		BotMention:    getEnv("BOT_MENTION", "@rfcbot"),
		BotConfigPath: getEnv("RFCBOT_CONFIG", "rfcbot.toml"),

		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisStreamPrefix: getEnv("REDIS_STREAM_PREFIX", "fcp"),

		NagInterval: getDuration("NAG_INTERVAL", 5*time.Minute),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
