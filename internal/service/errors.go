package service

import "errors"

// Client errors. Handlers answer these with 400; anything else is a server error.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoImage            = errors.New("no image uploaded")
	ErrInvalidAge         = errors.New("age must be a number")
	ErrInvalidField       = errors.New("invalid field")
)

// IsClientError reports whether err was caused by the request rather than the server.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrMissingFields, ErrEmailTaken, ErrUserNotFound, ErrInvalidCredentials,
		ErrNoImage, ErrInvalidAge, ErrInvalidField,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
