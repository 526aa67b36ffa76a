package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fcp-bot-service/api"
	"fcp-bot-service/internal/command"
	"fcp-bot-service/internal/config"
	"fcp-bot-service/internal/database"
	"fcp-bot-service/internal/domain"
	"fcp-bot-service/internal/handler"
	"fcp-bot-service/internal/notifier"
	"fcp-bot-service/internal/repository"
	"fcp-bot-service/internal/repository/memory"
	"fcp-bot-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type repositories struct {
	users     domain.UserRepository
	issues    domain.IssueRepository
	comments  domain.CommentRepository
	proposals domain.ProposalRepository
	close     func() error
}

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	botConfig, err := config.LoadBotConfig(cfg.BotConfigPath)
	if err != nil {
		logger.Fatalf("Bot config load failed: %v", err)
	}
	logger.WithField("teams", botConfig.TeamLabels()).Info("Bot config loaded")

	// Хранилище
	repos, err := newRepositories(cfg, logger)
	if err != nil {
		logger.Fatalf("Storage init failed: %v", err)
	}
	defer repos.close()

	// Получатель уведомлений
	var sink domain.Notifier
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		sink = notifier.NewRedisNotifier(rdb, cfg.RedisStreamPrefix, logger)
		logger.WithField("addr", cfg.RedisAddr).Info("Redis notifier enabled")
	} else {
		sink = notifier.NewLogNotifier(logger)
	}

	// Use Cases
	authUC := usecase.NewAuthUseCase(botConfig, repos.users)
	processUC := usecase.NewProcessUseCase(repos.proposals, repos.users)
	feedbackUC := usecase.NewFeedbackUseCase(repos.proposals)
	nagUC := usecase.NewNagUseCase(repos.proposals, repos.issues, botConfig)
	proposalUC := usecase.NewProposalUseCase(repos.proposals)
	teamUC := usecase.NewTeamUseCase(botConfig, repos.users)
	commentUC := usecase.NewCommentUseCase(usecase.CommentUseCaseDeps{
		UserRepo:    repos.users,
		IssueRepo:   repos.issues,
		CommentRepo: repos.comments,
		Parser:      command.NewParser(cfg.BotMention),
		Auth:        authUC,
		Process:     processUC,
		Feedback:    feedbackUC,
		Nag:         nagUC,
		Notifier:    sink,
		Logger:      logger,
	})

	// Участники команд без записи в базе не получат запросов ревью
	validation, err := teamUC.ValidateTeams(context.Background())
	if err != nil {
		logger.Fatalf("Team validation failed: %v", err)
	}
	for label, logins := range validation.UnknownLogins {
		logger.WithFields(logrus.Fields{
			"team":   label,
			"logins": logins,
		}).Warn("Team members not found in github_users")
	}

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(commentUC, nagUC, proposalUC, botConfig, sink, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Периодическая оценка предложений
	nagCtx, stopNag := context.WithCancel(context.Background())
	nagDone := make(chan struct{})
	go func() {
		defer close(nagDone)
		runNagTicker(nagCtx, nagUC, sink, cfg.NagInterval, logger)
	}()

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	stopNag()
	<-nagDone

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}

func newRepositories(cfg config.Config, logger *logrus.Logger) (*repositories, error) {
	switch cfg.StorageType {
	case config.StorageTypeMemory:
		store := memory.NewStore()
		logger.Warn("Using in-memory storage, state is lost on restart")
		return &repositories{
			users:     store.Users(),
			issues:    store.Issues(),
			comments:  store.Comments(),
			proposals: store.Proposals(),
			close:     func() error { return nil },
		}, nil

	case config.StorageTypePostgres:
		// База данных (database/sql)
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		logger.Info("Database connected")

		// SQLC queries
		queries := database.New(db)

		return &repositories{
			users:     repository.NewUserRepository(db, queries),
			issues:    repository.NewIssueRepository(db, queries),
			comments:  repository.NewCommentRepository(queries),
			proposals: repository.NewProposalRepository(db, queries),
			close:     db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_TYPE %q", cfg.StorageType)
	}
}

// runNagTicker оценивает предложения раз в interval. Нулевой interval отключает таймер.
func runNagTicker(ctx context.Context, nag domain.NagUseCase, sink domain.Notifier, interval time.Duration, logger *logrus.Logger) {
	if interval <= 0 {
		logger.Info("Periodic nag evaluation disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			signals, err := nag.Evaluate(ctx)
			if err != nil {
				logger.WithError(err).Error("Periodic nag evaluation failed")
				continue
			}
			if len(signals) == 0 {
				continue
			}
			if err := sink.PublishFinalize(ctx, signals); err != nil {
				logger.WithError(err).Warn("Failed to publish finalize signals")
				continue
			}
			logger.WithField("ready", len(signals)).Info("Finalize signals published")
		}
	}
}
