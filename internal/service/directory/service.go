package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
)

// Service exposes the shop and employee directory.
type Service struct {
	directoryRepo DirectoryRepository
	logger        Logger
}

// NewService creates a directory service.
func NewService(directoryRepo DirectoryRepository, logger Logger) *Service {
	return &Service{
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// ListShops fetches every shop in the directory.
func (s *Service) ListShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.directoryRepo.ListShops(ctx)
	if err != nil {
		s.logger.Error("ListShops: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListShops - repository error: %v", ErrInternal, err)
	}

	return shops, nil
}

// ListShopsForManager fetches the shops owned by a manager.
func (s *Service) ListShopsForManager(ctx context.Context, managerID int64) ([]domain.Shop, error) {
	shops, err := s.directoryRepo.ListShopsForManager(ctx, managerID)
	if err != nil {
		s.logger.Error("ListShopsForManager: repository error for manager=%d: %v", managerID, err)
		return nil, fmt.Errorf("%w: ListShopsForManager - repository error: %v", ErrInternal, err)
	}

	return shops, nil
}

// GetShop fetches a single shop.
func (s *Service) GetShop(ctx context.Context, id int64) (*domain.Shop, error) {
	shop, err := s.directoryRepo.GetShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrShopNotFound) {
			s.logger.Warn("GetShop: shop id=%d not found", id)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetShop: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetShop - repository error: %v", ErrInternal, err)
	}

	return shop, nil
}

// ListEmployees fetches the employees of a shop. The shop must exist.
func (s *Service) ListEmployees(ctx context.Context, shopID int64) ([]domain.Employee, error) {
	if _, err := s.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	employees, err := s.directoryRepo.ListEmployeesForShop(ctx, shopID)
	if err != nil {
		s.logger.Error("ListEmployees: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}

	return employees, nil
}

// GetEmployee fetches a single employee.
func (s *Service) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.directoryRepo.GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetEmployee: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetEmployee: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetEmployee - repository error: %v", ErrInternal, err)
	}

	return employee, nil
}

// EmployeeWorksAtShop reports whether an employee is assigned to a shop.
func (s *Service) EmployeeWorksAtShop(ctx context.Context, employeeID, shopID int64) (bool, error) {
	works, err := s.directoryRepo.EmployeeWorksAtShop(ctx, employeeID, shopID)
	if err != nil {
		s.logger.Error("EmployeeWorksAtShop: repository error for employee=%d shop=%d: %v", employeeID, shopID, err)
		return false, fmt.Errorf("%w: EmployeeWorksAtShop - repository error: %v", ErrInternal, err)
	}

	return works, nil
}
