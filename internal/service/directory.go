package service

import (
	"context"

	"ebill-api/internal/model"
)

// AccountDirectory is the persistence contract the auth and profile
// services depend on. Reads signal absence with model.ErrUserNotFound;
// writes signal duplicates with model.ErrUsernameTaken or
// model.ErrEmailTaken.
type AccountDirectory interface {
	FindByID(ctx context.Context, userID string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) error
	UpdateFields(ctx context.Context, userID string, updates model.AccountUpdate) (model.User, error)
	Delete(ctx context.Context, userID string) error
}
