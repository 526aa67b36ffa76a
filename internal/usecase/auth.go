package usecase

import (
	"context"
	"fmt"

	"fcp-bot-service/internal/domain"
)

// AuthUseCase определяет участников команд, которым доступны команды бота на issue.
type AuthUseCase struct {
	teams    domain.TeamDirectory
	userRepo domain.UserRepository
}

// NewAuthUseCase создает новый экземпляр AuthUseCase.
func NewAuthUseCase(teams domain.TeamDirectory, userRepo domain.UserRepository) domain.AuthUseCase {
	return &AuthUseCase{
		teams:    teams,
		userRepo: userRepo,
	}
}

// AuthorizedMembers объединяет участников всех команд, чьи метки стоят на issue.
// Набор считается заново на каждый вызов.
func (uc *AuthUseCase) AuthorizedMembers(ctx context.Context, issue *domain.Issue) ([]*domain.GitHubUser, error) {
	logins := uc.teams.MemberLogins(issue.Labels)
	if len(logins) == 0 {
		return []*domain.GitHubUser{}, nil
	}

	// Логины без записи в github_users пропускаются
	members, err := uc.userRepo.GetByLogins(ctx, logins)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team members: %w", err)
	}

	return members, nil
}

// IsAuthorized проверяет, может ли пользователь отдавать команды на issue.
func (uc *AuthUseCase) IsAuthorized(ctx context.Context, user *domain.GitHubUser, issue *domain.Issue) (bool, error) {
	members, err := uc.AuthorizedMembers(ctx, issue)
	if err != nil {
		return false, err
	}
	return domain.ContainsUser(members, user), nil
}
