package create_booking_link

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

type BookingLinkService interface {
	Generate(ctx context.Context, phone string, shopID int64) (*domain.BookingLink, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
