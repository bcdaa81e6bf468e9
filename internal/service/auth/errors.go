package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when username or password is wrong.
	// The same error covers unknown accounts so a caller cannot probe for
	// registered usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
