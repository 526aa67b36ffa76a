package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fcp-bot-service/internal/database"
	"fcp-bot-service/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB, queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		db:      db,
		queries: queries,
	}
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.GitHubUser, error) {
	dbUser, err := r.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// GetByLogin возвращает пользователя по логину.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.GitHubUser, error) {
	dbUser, err := r.queries.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, login)
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// GetByLogins возвращает известных пользователей из списка логинов. Неизвестные логины пропускаются.
func (r *UserRepository) GetByLogins(ctx context.Context, logins []string) ([]*domain.GitHubUser, error) {
	if len(logins) == 0 {
		return []*domain.GitHubUser{}, nil
	}

	dbUsers, err := r.queries.GetUsersByLogins(ctx, logins)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by logins: %w", err)
	}

	users := make([]*domain.GitHubUser, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		users = append(users, toDomainUser(dbUser))
	}

	return users, nil
}

// Upsert создает пользователя или обновляет его логин.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.GitHubUser) error {
	err := r.queries.UpsertUser(ctx, database.UpsertUserParams{
		ID:    user.ID,
		Login: user.Login,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", user.Login, err)
	}
	return nil
}

func toDomainUser(u database.GithubUser) *domain.GitHubUser {
	return &domain.GitHubUser{
		ID:    u.ID,
		Login: u.Login,
	}
}
