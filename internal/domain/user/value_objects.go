package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidRole     = errors.New("invalid role")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
)

const MinPasswordLength = 8

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return Email{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	emailVO, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: emailVO, password: password}, nil
}

func (c Credentials) Email() Email     { return c.email }
func (c Credentials) Password() string { return c.password }

// ValidateNewPassword applies the registration-time policy. Login uses the
// weaker NewCredentials check so that legacy accounts can still sign in.
func ValidateNewPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}
