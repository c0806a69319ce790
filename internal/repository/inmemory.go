package repository

import (
	"context"
	"sync"

	"ebill-api/internal/model"
)

// InMemoryUserRepository is a map-backed account directory used in
// tests. It honors the same contract as UserRepository, including the
// uniqueness signals on write.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: map[string]model.User{}}
}

func (r *InMemoryUserRepository) FindByID(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[userID]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindByUsername(_ context.Context, username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (r *InMemoryUserRepository) Create(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return model.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return model.ErrEmailTaken
		}
	}

	r.users[u.UserID] = u
	return nil
}

func (r *InMemoryUserRepository) UpdateFields(_ context.Context, userID string, updates model.AccountUpdate) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}

	for id, existing := range r.users {
		if id == userID {
			continue
		}
		if updates.Username != nil && existing.Username == *updates.Username {
			return model.User{}, model.ErrUsernameTaken
		}
		if updates.Email != nil && existing.Email == *updates.Email {
			return model.User{}, model.ErrEmailTaken
		}
	}

	if updates.Username != nil {
		user.Username = *updates.Username
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.FirstName != nil {
		user.FirstName = updates.FirstName
	}
	if updates.LastName != nil {
		user.LastName = updates.LastName
	}

	r.users[userID] = user
	return user, nil
}

func (r *InMemoryUserRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[userID]; !exists {
		return model.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}
