package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fcp-bot-service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CommentUseCase прогоняет пачку комментариев через разбор, авторизацию и обработку команд.
type CommentUseCase struct {
	userRepo    domain.UserRepository
	issueRepo   domain.IssueRepository
	commentRepo domain.CommentRepository
	parser      domain.CommandParser
	auth        domain.AuthUseCase
	process     domain.ProcessUseCase
	feedback    domain.FeedbackUseCase
	nag         domain.NagUseCase
	notifier    domain.Notifier
	logger      *logrus.Logger
}

// CommentUseCaseDeps - зависимости CommentUseCase.
type CommentUseCaseDeps struct {
	UserRepo    domain.UserRepository
	IssueRepo   domain.IssueRepository
	CommentRepo domain.CommentRepository
	Parser      domain.CommandParser
	Auth        domain.AuthUseCase
	Process     domain.ProcessUseCase
	Feedback    domain.FeedbackUseCase
	Nag         domain.NagUseCase
	Notifier    domain.Notifier
	Logger      *logrus.Logger
}

// NewCommentUseCase создает новый экземпляр CommentUseCase.
func NewCommentUseCase(deps CommentUseCaseDeps) domain.CommentUseCase {
	return &CommentUseCase{
		userRepo:    deps.UserRepo,
		issueRepo:   deps.IssueRepo,
		commentRepo: deps.CommentRepo,
		parser:      deps.Parser,
		auth:        deps.Auth,
		process:     deps.Process,
		feedback:    deps.Feedback,
		nag:         deps.Nag,
		notifier:    deps.Notifier,
		logger:      deps.Logger,
	}
}

// RecordComments сохраняет авторов, issue с метками и сами комментарии.
// Повторная доставка тех же комментариев безопасна.
func (uc *CommentUseCase) RecordComments(ctx context.Context, incoming []*domain.IncomingComment) ([]*domain.Comment, error) {
	// Валидация входных данных
	if len(incoming) == 0 {
		return nil, domain.ErrEmptyCommentsBatch
	}
	for _, in := range incoming {
		if in == nil || in.CommentID <= 0 || in.Author.ID <= 0 || in.Author.Login == "" || in.Number <= 0 {
			return nil, domain.ErrInvalidComment
		}
		if in.Repository == "" {
			return nil, domain.ErrInvalidRepository
		}
	}

	comments := make([]*domain.Comment, 0, len(incoming))
	for _, in := range incoming {
		// 1. Автор
		author := in.Author
		if err := uc.userRepo.Upsert(ctx, &author); err != nil {
			return nil, err
		}

		// 2. Issue с текущим набором меток
		issue, err := uc.issueRepo.Upsert(ctx, &domain.Issue{
			Repository: in.Repository,
			Number:     in.Number,
			Labels:     in.Labels,
		})
		if err != nil {
			return nil, err
		}

		// 3. Комментарий
		comment := &domain.Comment{
			ID:        in.CommentID,
			IssueID:   issue.ID,
			UserID:    author.ID,
			Body:      in.Body,
			CreatedAt: in.CreatedAt,
		}
		if err := uc.commentRepo.Create(ctx, comment); err != nil {
			return nil, err
		}

		comments = append(comments, comment)
	}

	return comments, nil
}

// ProcessComments обрабатывает пачку в порядке создания комментариев, затем один раз
// оценивает готовность предложений. Уже примененные команды не откатываются,
// если обработка прервалась на ошибке хранилища или поиска.
func (uc *CommentUseCase) ProcessComments(ctx context.Context, comments []*domain.Comment) (*domain.BatchResult, error) {
	log := uc.logger.WithField("run_id", uuid.NewString())

	// 1. Сортируем по времени создания
	sorted := make([]*domain.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	result := &domain.BatchResult{}

	// 2. Обрабатываем комментарии по одному
	for _, comment := range sorted {
		if err := uc.processComment(ctx, log, comment, result); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"comment_id": comment.ID,
				"processed":  result.Processed,
			}).Error("Comment batch aborted")
			return nil, err
		}
		result.Processed++
	}

	// 3. Оцениваем готовность предложений
	signals, err := uc.nag.Evaluate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate proposals: %w", err)
	}
	result.Signals = signals

	if len(signals) > 0 {
		if err := uc.notifier.PublishFinalize(ctx, signals); err != nil {
			log.WithError(err).Warn("Failed to publish finalize signals")
		}
	}

	log.WithFields(logrus.Fields{
		"processed": result.Processed,
		"commands":  result.Commands,
		"dropped":   result.Dropped,
		"ready":     len(result.Signals),
	}).Info("Comment batch processed")

	return result, nil
}

func (uc *CommentUseCase) processComment(ctx context.Context, log *logrus.Entry, comment *domain.Comment, result *domain.BatchResult) error {
	// 1. Issue и автор обязаны существовать
	issue, err := uc.issueRepo.GetByID(ctx, comment.IssueID)
	if err != nil {
		return fmt.Errorf("failed to resolve issue of comment %d: %w", comment.ID, err)
	}
	author, err := uc.userRepo.GetByID(ctx, comment.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve author of comment %d: %w", comment.ID, err)
	}

	// 2. Участники команд по меткам issue
	members, err := uc.auth.AuthorizedMembers(ctx, issue)
	if err != nil {
		return err
	}

	// 3. Разбор
	cmd, parseErr := uc.parser.Parse(comment.Body)

	// 4. Ответ на запрос обратной связи засчитывается любым комментарием
	if err := uc.feedback.Resolve(ctx, author, issue, comment); err != nil {
		return err
	}

	entry := log.WithFields(logrus.Fields{
		"comment_id": comment.ID,
		"issue_id":   issue.ID,
		"author":     author.Login,
	})

	if parseErr != nil {
		if !domain.IsParseError(parseErr) {
			return parseErr
		}
		if !errors.Is(parseErr, domain.ErrNotAddressed) {
			entry.WithError(parseErr).Debug("Ignoring invalid bot command")
		}
		return nil
	}

	// 5. Команды не из команд issue молча отбрасываются
	if !domain.ContainsUser(members, author) {
		result.Dropped++
		entry.WithField("command", cmd.Kind.String()).Debug("Dropping command from unauthorized user")
		return nil
	}

	intents, err := uc.process.Apply(ctx, cmd, author, issue, comment, members)
	if err != nil {
		return err
	}
	result.Commands++

	if len(intents) > 0 {
		if err := uc.notifier.PublishIntents(ctx, intents); err != nil {
			entry.WithError(err).Warn("Failed to publish intents")
		}
	}

	return nil
}
