package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidReference = errors.New("referenced record id must be positive")
	ErrEmptyDate        = errors.New("date is required")
	ErrNegativeValue    = errors.New("value must not be negative")
	ErrInvalidWeight    = errors.New("weight must be positive")
	ErrInvalidBodyFat   = errors.New("body fat must be between 0 and 100")

	ErrInvalidUsername  = errors.New("username must be at least 3 characters")
	ErrInvalidPassword  = errors.New("password must be 8 to 72 characters with upper case, lower case and a digit, and must not start or end with spaces")
	ErrEmptyCredentials = errors.New("username and password are required")
)
