package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ebill-api/internal/model"
	"ebill-api/pkg/apierror"
)

// AuthService composes the credential hasher, the token service, and
// the account directory into the login and registration flows.
type AuthService struct {
	directory AccountDirectory
	hasher    *PasswordHasher
	tokens    *TokenService
}

func NewAuthService(directory AccountDirectory, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{directory: directory, hasher: hasher, tokens: tokens}
}

// Login verifies the username/password pair and returns a signed
// bearer token. A missing account and a wrong password surface as
// distinct errors, matching the upstream behavior.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	user, err := s.directory.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", apierror.NotFound("User not found")
	}
	if err != nil {
		return "", fmt.Errorf("login lookup: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apierror.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Register creates a new account. The username check runs strictly
// before the email check, so when both collide only the username
// conflict is reported. The existence checks are advisory: the
// store's unique constraints are the source of truth, and a
// concurrent duplicate create maps to the same conflict errors.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisteredUser, error) {
	if _, err := s.directory.FindByUsername(ctx, req.Username); err == nil {
		return model.RegisteredUser{}, apierror.Conflict("Username already taken")
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return model.RegisteredUser{}, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.directory.FindByEmail(ctx, req.Email); err == nil {
		return model.RegisteredUser{}, apierror.Conflict("Email already registered")
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return model.RegisteredUser{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.RegisteredUser{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := model.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.directory.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			return model.RegisteredUser{}, apierror.Conflict("Username already taken")
		case errors.Is(err, model.ErrEmailTaken):
			return model.RegisteredUser{}, apierror.Conflict("Email already registered")
		}
		return model.RegisteredUser{}, fmt.Errorf("create user: %w", err)
	}

	return model.RegisteredUser{UserID: user.UserID, Username: user.Username, Email: user.Email}, nil
}
