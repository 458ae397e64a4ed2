package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/fit-journal/models"
)

// Field names accepted by UserValidator.Validate.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldCredentials = "credentials"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// UserValidator validates registration and login input.
//
// Registration runs FieldUsername and FieldPassword (the default). Login only
// needs FieldCredentials, which checks that both values are present.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(user.Username)) < minUsernameLength {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if !isStrongPassword(user.Password) {
				return ErrInvalidPassword
			}
		case FieldCredentials:
			if user.Username == "" || user.Password == "" {
				return ErrEmptyCredentials
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func isStrongPassword(password string) bool {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return false
	}
	if strings.TrimSpace(password) != password {
		return false
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}
