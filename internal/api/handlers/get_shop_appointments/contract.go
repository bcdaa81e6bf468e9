package get_shop_appointments

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

type AppointmentService interface {
	GetForShop(ctx context.Context, shopID, callerID int64, role domain.Role) ([]*domain.AppointmentDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
