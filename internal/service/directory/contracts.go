package directory

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// DirectoryRepository is the storage behind the shop and employee directory.
type DirectoryRepository interface {
	GetShopByID(ctx context.Context, id int64) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]domain.Shop, error)
	ListShopsForManager(ctx context.Context, managerID int64) ([]domain.Shop, error)
	GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployeesForShop(ctx context.Context, shopID int64) ([]domain.Employee, error)
	EmployeeWorksAtShop(ctx context.Context, employeeID, shopID int64) (bool, error)
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
