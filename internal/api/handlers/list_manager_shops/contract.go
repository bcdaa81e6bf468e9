package list_manager_shops

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

type DirectoryService interface {
	ListShopsForManager(ctx context.Context, managerID int64) ([]domain.Shop, error)
	GetShop(ctx context.Context, id int64) (*domain.Shop, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
