package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ebill-api/internal/model"
	"ebill-api/pkg/apierror"
)

// UserService implements the profile operations: lookup, partial
// update, and deletion of accounts by id.
type UserService struct {
	directory AccountDirectory
}

func NewUserService(directory AccountDirectory) *UserService {
	return &UserService{directory: directory}
}

func (s *UserService) GetByID(ctx context.Context, userID string) (model.User, error) {
	if err := validateUserID(userID); err != nil {
		return model.User{}, err
	}

	user, err := s.directory.FindByID(ctx, userID)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, apierror.NotFound("User not found")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Update applies the provided fields only; password_hash and user_id
// are never touched here. Uniqueness pre-checks give the friendly
// error, while the store constraint catches the concurrent case.
func (s *UserService) Update(ctx context.Context, userID string, updates model.AccountUpdate) (model.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	if updates.Username != nil && *updates.Username != user.Username {
		if _, err := s.directory.FindByUsername(ctx, *updates.Username); err == nil {
			return model.User{}, apierror.Conflict("Username already exists")
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return model.User{}, fmt.Errorf("check username: %w", err)
		}
	}

	if updates.Email != nil && *updates.Email != user.Email {
		if _, err := s.directory.FindByEmail(ctx, *updates.Email); err == nil {
			return model.User{}, apierror.Conflict("Email already exists")
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return model.User{}, fmt.Errorf("check email: %w", err)
		}
	}

	updated, err := s.directory.UpdateFields(ctx, userID, updates)
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return model.User{}, apierror.NotFound("User not found")
	case errors.Is(err, model.ErrUsernameTaken):
		return model.User{}, apierror.Conflict("Username already exists")
	case errors.Is(err, model.ErrEmailTaken):
		return model.User{}, apierror.Conflict("Email already exists")
	case err != nil:
		return model.User{}, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete removes the account permanently. Deletion is irreversible
// and the user_id is never reused.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	err := s.directory.Delete(ctx, userID)
	if errors.Is(err, model.ErrUserNotFound) {
		return apierror.NotFound("User not found")
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func validateUserID(userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return apierror.BadRequest("Invalid user ID")
	}
	return nil
}
