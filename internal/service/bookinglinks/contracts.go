package bookinglinks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// LinkRepository is the storage behind one-time booking links.
type LinkRepository interface {
	Create(ctx context.Context, link *domain.BookingLink) (*domain.BookingLink, error)
	GetByToken(ctx context.Context, token string) (*domain.BookingLink, error)
	MarkUsed(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// CustomerRepository finds or creates the customer a link is issued for.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
}

// DirectoryRepository verifies the shop a link points at.
type DirectoryRepository interface {
	GetShopByID(ctx context.Context, id int64) (*domain.Shop, error)
}

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider returns wall clock time.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
