package list_services

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

type CatalogService interface {
	ListForEmployee(ctx context.Context, employeeID int64) ([]domain.Service, error)
}

type DirectoryService interface {
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
