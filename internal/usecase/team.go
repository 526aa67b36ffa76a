package usecase

import (
	"context"
	"fmt"

	"fcp-bot-service/internal/domain"
)

// TeamUseCase проверяет команды из конфигурации бота.
type TeamUseCase struct {
	teams    domain.TeamDirectory
	userRepo domain.UserRepository
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(teams domain.TeamDirectory, userRepo domain.UserRepository) domain.TeamUseCase {
	return &TeamUseCase{
		teams:    teams,
		userRepo: userRepo,
	}
}

// ValidateTeams находит участников команд, которых нет в github_users.
// Такие участники не получат запросов ревью, пока не появятся в базе.
func (uc *TeamUseCase) ValidateTeams(ctx context.Context) (*domain.TeamValidationResult, error) {
	result := &domain.TeamValidationResult{
		UnknownLogins: make(map[string][]string),
	}

	for _, team := range uc.teams.Teams() {
		result.TeamsChecked++

		users, err := uc.userRepo.GetByLogins(ctx, team.MemberLogins)
		if err != nil {
			return nil, fmt.Errorf("failed to validate team %s: %w", team.Label, err)
		}

		known := make(map[string]bool, len(users))
		for _, u := range users {
			known[u.Login] = true
		}

		for _, login := range team.MemberLogins {
			if !known[login] {
				result.UnknownLogins[team.Label] = append(result.UnknownLogins[team.Label], login)
			}
		}
	}

	return result, nil
}
