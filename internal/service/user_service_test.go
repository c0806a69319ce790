package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebill-api/internal/model"
	"ebill-api/internal/repository"
)

func seedAccounts(t *testing.T) (*UserService, *repository.InMemoryUserRepository, model.RegisteredUser, model.RegisteredUser) {
	t.Helper()

	ctx := context.Background()
	directory := repository.NewInMemoryUserRepository()
	auth := newAuthService(t, directory)

	first, err := auth.Register(ctx, registerRequest("student1", "student1@school.com"))
	require.NoError(t, err)
	second, err := auth.Register(ctx, registerRequest("student2", "student2@school.com"))
	require.NoError(t, err)

	return NewUserService(directory), directory, first, second
}

func strPtr(s string) *string { return &s }

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _, first, _ := seedAccounts(t)

	t.Run("found", func(t *testing.T) {
		user, err := svc.GetByID(ctx, first.UserID)
		require.NoError(t, err)
		assert.Equal(t, "student1", user.Username)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "not-a-uuid")
		requireAPIError(t, err, http.StatusBadRequest, "Invalid user ID")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "123e4567-e89b-12d3-a456-426614174999")
		requireAPIError(t, err, http.StatusNotFound, "User not found")
	})
}

func TestUserService_UpdateSingleField(t *testing.T) {
	ctx := context.Background()
	svc, directory, first, _ := seedAccounts(t)

	before, err := directory.FindByID(ctx, first.UserID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, first.UserID, model.AccountUpdate{FirstName: strPtr("John")})
	require.NoError(t, err)

	require.NotNil(t, updated.FirstName)
	assert.Equal(t, "John", *updated.FirstName)
	assert.Equal(t, before.Username, updated.Username)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.PasswordHash, updated.PasswordHash)
	assert.Equal(t, before.UserID, updated.UserID)
}

func TestUserService_UpdateConflicts(t *testing.T) {
	ctx := context.Background()
	svc, directory, first, _ := seedAccounts(t)

	t.Run("username owned by another account", func(t *testing.T) {
		_, err := svc.Update(ctx, first.UserID, model.AccountUpdate{Username: strPtr("student2")})
		requireAPIError(t, err, http.StatusBadRequest, "Username already exists")

		// Original record is unchanged.
		unchanged, err := directory.FindByID(ctx, first.UserID)
		require.NoError(t, err)
		assert.Equal(t, "student1", unchanged.Username)
	})

	t.Run("email owned by another account", func(t *testing.T) {
		_, err := svc.Update(ctx, first.UserID, model.AccountUpdate{Email: strPtr("student2@school.com")})
		requireAPIError(t, err, http.StatusBadRequest, "Email already exists")
	})

	t.Run("own username is not a conflict", func(t *testing.T) {
		updated, err := svc.Update(ctx, first.UserID, model.AccountUpdate{Username: strPtr("student1")})
		require.NoError(t, err)
		assert.Equal(t, "student1", updated.Username)
	})
}

func TestUserService_UpdateMissing(t *testing.T) {
	svc, _, _, _ := seedAccounts(t)

	_, err := svc.Update(context.Background(), "123e4567-e89b-12d3-a456-426614174999",
		model.AccountUpdate{FirstName: strPtr("John")})
	requireAPIError(t, err, http.StatusNotFound, "User not found")
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, directory, first, _ := seedAccounts(t)

	require.NoError(t, svc.Delete(ctx, first.UserID))

	_, err := directory.FindByID(ctx, first.UserID)
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	// Repeated delete reports the account as gone.
	err = svc.Delete(ctx, first.UserID)
	requireAPIError(t, err, http.StatusNotFound, "User not found")

	t.Run("invalid id", func(t *testing.T) {
		err := svc.Delete(ctx, "not-a-uuid")
		requireAPIError(t, err, http.StatusBadRequest, "Invalid user ID")
	})
}
