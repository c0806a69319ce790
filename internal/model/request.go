package model

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"ebill-api/pkg/apierror"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 8
	nameMaxLen     = 50
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return apierror.BadRequest("username is required")
	}
	if r.Password == "" {
		return apierror.BadRequest("password is required")
	}
	return nil
}

type RegisterRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (r RegisterRequest) Validate() error {
	if err := validateUsername(r.Username); err != nil {
		return err
	}
	if utf8.RuneCountInString(r.Password) < passwordMinLen {
		return apierror.BadRequest("password must be at least 8 characters")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if err := validateName(r.FirstName, "first_name"); err != nil {
		return err
	}
	return validateName(r.LastName, "last_name")
}

type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (r UpdateProfileRequest) Validate() error {
	if r.Username != nil {
		if err := validateUsername(*r.Username); err != nil {
			return err
		}
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if err := validateName(r.FirstName, "first_name"); err != nil {
		return err
	}
	return validateName(r.LastName, "last_name")
}

func (r UpdateProfileRequest) Update() AccountUpdate {
	return AccountUpdate{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

func validateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length < usernameMinLen || length > usernameMaxLen {
		return apierror.BadRequest("username must be between 3 and 30 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apierror.BadRequest("email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apierror.BadRequest("email must be a valid email address")
	}
	return nil
}

func validateName(name *string, field string) error {
	if name != nil && utf8.RuneCountInString(*name) > nameMaxLen {
		return apierror.BadRequest(field + " must be at most 50 characters")
	}
	return nil
}
