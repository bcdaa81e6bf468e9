package list_employees

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

type DirectoryService interface {
	ListEmployees(ctx context.Context, shopID int64) ([]domain.Employee, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
