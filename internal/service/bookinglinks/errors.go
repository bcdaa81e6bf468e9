package bookinglinks

import "errors"

var (
	// ErrShopNotFound is returned when the target shop does not exist.
	ErrShopNotFound = errors.New("shop not found")

	// ErrLinkNotFound is returned when no link matches the token.
	ErrLinkNotFound = errors.New("booking link not found")

	// ErrLinkExpired is returned when the link is past its lifetime.
	ErrLinkExpired = errors.New("booking link expired")

	// ErrLinkUsed is returned when the link was already consumed.
	ErrLinkUsed = errors.New("booking link already used")

	// ErrInvalidInput is returned on malformed link requests.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
