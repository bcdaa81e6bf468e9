package catalog

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// CatalogRepository is the storage behind the service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
	ListForEmployee(ctx context.Context, employeeID int64) ([]domain.Service, error)
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
