package auth

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// DirectoryRepository looks up the accounts that may sign in.
type DirectoryRepository interface {
	GetManagerByUsername(ctx context.Context, username string) (*domain.Manager, error)
	GetShopByUsername(ctx context.Context, username string) (*domain.Shop, string, error)
}

// TokenIssuer signs access tokens for authenticated principals.
type TokenIssuer interface {
	GenerateToken(userID int64, role domain.Role) (string, error)
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
