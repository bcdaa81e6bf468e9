package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/catalog"
)

// Service manages the catalog of bookable services.
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService creates a catalog service.
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreateService adds a new service to the catalog.
func (s *Service) CreateService(ctx context.Context, name string, price float64, durationMinutes int) (*domain.Service, error) {
	s.logger.Info("CreateService: creating service name=%q duration=%d", name, durationMinutes)

	if err := validateServiceData(name, price, durationMinutes); err != nil {
		s.logger.Warn("CreateService: invalid service data: %v", err)
		return nil, err
	}

	service := &domain.Service{
		Name:            name,
		Price:           price,
		DurationMinutes: durationMinutes,
	}

	created, err := s.catalogRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d", created.ID)
	return created, nil
}

// UpdateService replaces the data of an existing service.
func (s *Service) UpdateService(ctx context.Context, id int64, name string, price float64, durationMinutes int) (*domain.Service, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	if err := validateServiceData(name, price, durationMinutes); err != nil {
		s.logger.Warn("UpdateService: invalid service data for id=%d: %v", id, err)
		return nil, err
	}

	service := &domain.Service{
		ID:              id,
		Name:            name,
		Price:           price,
		DurationMinutes: durationMinutes,
	}

	if err := s.catalogRepo.Update(ctx, service); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%d", id)
	return service, nil
}

// DeleteService removes a service from the catalog.
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: deleting service id=%d", id)

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: deleted service id=%d", id)
	return nil
}

// GetService fetches a single service.
func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return service, nil
}

// ListForEmployee fetches the services an employee can perform.
func (s *Service) ListForEmployee(ctx context.Context, employeeID int64) ([]domain.Service, error) {
	services, err := s.catalogRepo.ListForEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("ListForEmployee: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: ListForEmployee - repository error: %v", ErrInternal, err)
	}

	return services, nil
}

// ResolveServices resolves the given service ids into concrete services and
// sums their duration and price. Every id must exist; an unknown id fails the
// whole resolution instead of silently shrinking the booking.
func (s *Service) ResolveServices(ctx context.Context, ids []int64) ([]domain.Service, int, float64, error) {
	if len(ids) == 0 {
		s.logger.Warn("ResolveServices: empty service list")
		return nil, 0, 0, fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	unique := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	services, err := s.catalogRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("ResolveServices: repository error: %v", err)
		return nil, 0, 0, fmt.Errorf("%w: ResolveServices - repository error: %v", ErrInternal, err)
	}

	if len(services) != len(unique) {
		s.logger.Warn("ResolveServices: %d of %d requested services not found", len(unique)-len(services), len(unique))
		return nil, 0, 0, ErrServiceNotFound
	}

	var totalDuration int
	var totalPrice float64
	for _, service := range services {
		totalDuration += service.DurationMinutes
		totalPrice += service.Price
	}

	return services, totalDuration, totalPrice, nil
}

func validateServiceData(name string, price float64, durationMinutes int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
