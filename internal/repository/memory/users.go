package memory

import (
	"context"
	"fmt"
	"sort"

	"fcp-bot-service/internal/domain"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) GetByID(_ context.Context, userID int64) (*domain.GitHubUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepo) GetByLogin(_ context.Context, login string) (*domain.GitHubUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.userByLogin[login]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, login)
	}
	user := r.s.users[id]
	return &user, nil
}

func (r *userRepo) GetByLogins(_ context.Context, logins []string) ([]*domain.GitHubUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*domain.GitHubUser, 0, len(logins))
	seen := make(map[int64]bool, len(logins))
	for _, login := range logins {
		id, ok := r.s.userByLogin[login]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		user := r.s.users[id]
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Login < users[j].Login })
	return users, nil
}

// Upsert повторяет ON CONFLICT (id) DO UPDATE: логин пользователя может смениться.
func (r *userRepo) Upsert(_ context.Context, user *domain.GitHubUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if ownerID, ok := r.s.userByLogin[user.Login]; ok && ownerID != user.ID {
		return fmt.Errorf("failed to upsert user: login %s belongs to user %d", user.Login, ownerID)
	}

	if old, ok := r.s.users[user.ID]; ok {
		delete(r.s.userByLogin, old.Login)
	}
	r.s.users[user.ID] = *user
	r.s.userByLogin[user.Login] = user.ID
	return nil
}
