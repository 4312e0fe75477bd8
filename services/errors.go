package services

import "errors"

// Error taxonomy shared by the services. Controllers map these onto HTTP
// statuses; anything else is an internal error and surfaces as a generic 500.
var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("authentication required")
	ErrNotFound           = errors.New("not found")
	ErrInvalidMealType    = errors.New("meal type must be breakfast, lunch, dinner or snack")
)
