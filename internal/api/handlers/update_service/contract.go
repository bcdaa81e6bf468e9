package update_service

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

type CatalogService interface {
	UpdateService(ctx context.Context, id int64, name string, price float64, durationMinutes int) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
