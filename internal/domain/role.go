package domain

import (
	"errors"
	"fmt"
)

// Role is the closed set of authenticated principal kinds.
type Role string

const (
	RoleManager Role = "manager"
	RoleShop    Role = "shop"
)

// ErrUnknownRole is returned for a role string outside the closed set.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a role string at the auth boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManager:
		return RoleManager, nil
	case RoleShop:
		return RoleShop, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}
