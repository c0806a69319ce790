package model

import "errors"

var (
	// Account directory signals
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")

	// Token related errors
	ErrInvalidToken = errors.New("invalid token")
)
