package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebill-api/internal/model"
	"ebill-api/internal/repository"
	"ebill-api/pkg/apierror"
)

func newAuthService(t *testing.T, directory AccountDirectory) *AuthService {
	t.Helper()

	tokens, err := NewTokenService("test-secret", 8*time.Hour)
	require.NoError(t, err)
	return NewAuthService(directory, NewPasswordHasher(), tokens)
}

func registerRequest(username string, email string) model.RegisterRequest {
	return model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "Password123!",
	}
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.HTTPStatus)
	assert.Equal(t, message, apiErr.Message)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	directory := repository.NewInMemoryUserRepository()
	svc := newAuthService(t, directory)

	created, err := svc.Register(ctx, registerRequest("student1", "student@school.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "student1", created.Username)
	assert.Equal(t, "student@school.com", created.Email)

	stored, err := directory.FindByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, "Password123!", stored.PasswordHash)
	assert.True(t, NewPasswordHasher().Verify("Password123!", stored.PasswordHash))
}

func TestAuthService_RegisterConflicts(t *testing.T) {
	ctx := context.Background()
	directory := repository.NewInMemoryUserRepository()
	svc := newAuthService(t, directory)

	_, err := svc.Register(ctx, registerRequest("student1", "student@school.com"))
	require.NoError(t, err)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, registerRequest("student1", "other@school.com"))
		requireAPIError(t, err, http.StatusBadRequest, "Username already taken")
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, registerRequest("student2", "student@school.com"))
		requireAPIError(t, err, http.StatusBadRequest, "Email already registered")
	})

	t.Run("both duplicated reports username first", func(t *testing.T) {
		_, err := svc.Register(ctx, registerRequest("student1", "student@school.com"))
		requireAPIError(t, err, http.StatusBadRequest, "Username already taken")
	})
}

// conflictOnCreate simulates a concurrent writer sneaking in between
// the advisory existence checks and the insert: the pre-checks see
// nothing, but the store's unique constraint fires.
type conflictOnCreate struct {
	AccountDirectory
	createErr error
}

func (d conflictOnCreate) Create(context.Context, model.User) error {
	return d.createErr
}

func TestAuthService_RegisterStoreLevelConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("username constraint", func(t *testing.T) {
		svc := newAuthService(t, conflictOnCreate{
			AccountDirectory: repository.NewInMemoryUserRepository(),
			createErr:        model.ErrUsernameTaken,
		})
		_, err := svc.Register(ctx, registerRequest("student1", "student@school.com"))
		requireAPIError(t, err, http.StatusBadRequest, "Username already taken")
	})

	t.Run("email constraint", func(t *testing.T) {
		svc := newAuthService(t, conflictOnCreate{
			AccountDirectory: repository.NewInMemoryUserRepository(),
			createErr:        model.ErrEmailTaken,
		})
		_, err := svc.Register(ctx, registerRequest("student1", "student@school.com"))
		requireAPIError(t, err, http.StatusBadRequest, "Email already registered")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	directory := repository.NewInMemoryUserRepository()
	svc := newAuthService(t, directory)

	created, err := svc.Register(ctx, registerRequest("student1", "student@school.com"))
	require.NoError(t, err)

	t.Run("success issues verifiable token", func(t *testing.T) {
		token, err := svc.Login(ctx, "student1", "Password123!")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, created.UserID, claims.UserID)
		assert.Equal(t, "student1", claims.Username)
		assert.Equal(t, "student@school.com", claims.Email)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "Password123!")
		requireAPIError(t, err, http.StatusNotFound, "User not found")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "student1", "WrongPassword!")
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid credentials")
	})
}
