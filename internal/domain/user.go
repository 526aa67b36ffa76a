package domain

import "context"

// GitHubUser представляет пользователя трекера.
type GitHubUser struct {
	ID    int64
	Login string
}

// ContainsUser проверяет, входит ли пользователь в список.
func ContainsUser(users []*GitHubUser, user *GitHubUser) bool {
	if user == nil {
		return false
	}
	for _, u := range users {
		if u.ID == user.ID {
			return true
		}
	}
	return false
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (*GitHubUser, error)
	GetByLogin(ctx context.Context, login string) (*GitHubUser, error)
	GetByLogins(ctx context.Context, logins []string) ([]*GitHubUser, error)
	Upsert(ctx context.Context, user *GitHubUser) error
}
