package model

import "time"

// User is the account record as stored. The password hash never leaves
// the process: it is excluded from JSON serialization entirely.
type User struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the identity carried inside a bearer token. Ephemeral,
// never persisted.
type Claims struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// AccountUpdate carries the mutable profile fields for a partial
// update. Nil means "leave unchanged".
type AccountUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the update would change nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.FirstName == nil && u.LastName == nil
}

// Profile is the public projection of an account returned by the
// profile endpoints.
type Profile struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (u User) Profile() Profile {
	return Profile{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// RegisteredUser is the payload returned on successful registration:
// public identifiers only, never the hash.
type RegisteredUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
