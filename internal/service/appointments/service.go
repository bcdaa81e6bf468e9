package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/customer"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
)

// Service reads appointments together with their related entities.
type Service struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	directoryRepo   DirectoryRepository
	customerRepo    CustomerRepository
	logger          Logger
}

// NewService creates an appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	directoryRepo DirectoryRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		directoryRepo:   directoryRepo,
		customerRepo:    customerRepo,
		logger:          logger,
	}
}

// GetByID fetches an appointment with its services, employee and customer.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.AppointmentDetails, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	details, err := s.loadDetails(ctx, appt)
	if err != nil {
		return nil, err
	}

	return details, nil
}

// GetForShop fetches the full schedule of a shop, newest appointment first.
// A manager may read the schedules of their own shops; a shop account may
// read only its own schedule.
func (s *Service) GetForShop(ctx context.Context, shopID, callerID int64, role domain.Role) ([]*domain.AppointmentDetails, error) {
	s.logger.Info("GetForShop: fetching schedule for shop=%d, caller=%d role=%s", shopID, callerID, role)

	shop, err := s.directoryRepo.GetShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrShopNotFound) {
			s.logger.Warn("GetForShop: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetForShop: repository error for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetForShop - repository error: %v", ErrInternal, err)
	}

	if err := checkScheduleAccess(shop, callerID, role); err != nil {
		s.logger.Warn("GetForShop: access denied for caller=%d role=%s to shop=%d", callerID, role, shopID)
		return nil, err
	}

	appts, err := s.appointmentRepo.GetByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("GetForShop: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetForShop - repository error: %v", ErrInternal, err)
	}

	details := make([]*domain.AppointmentDetails, 0, len(appts))
	for _, appt := range appts {
		d, err := s.loadDetails(ctx, appt)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	s.logger.Info("GetForShop: fetched %d appointments for shop=%d", len(details), shopID)
	return details, nil
}

func (s *Service) loadDetails(ctx context.Context, appt *domain.Appointment) (*domain.AppointmentDetails, error) {
	services, err := s.catalogRepo.ListForAppointment(ctx, appt.ID)
	if err != nil {
		s.logger.Error("loadDetails: failed to load services for appointment=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: loadDetails - failed to load services: %v", ErrInternal, err)
	}

	details := &domain.AppointmentDetails{
		Appointment: *appt,
		Services:    services,
	}

	// Employee and customer rows may have been removed since the booking was
	// made; the appointment itself stays readable.
	employee, err := s.directoryRepo.GetEmployeeByID(ctx, appt.EmployeeID)
	if err == nil {
		details.Employee = employee
	} else if !errors.Is(err, directoryRepo.ErrEmployeeNotFound) {
		s.logger.Error("loadDetails: failed to load employee=%d: %v", appt.EmployeeID, err)
		return nil, fmt.Errorf("%w: loadDetails - failed to load employee: %v", ErrInternal, err)
	}

	customer, err := s.customerRepo.GetByID(ctx, appt.CustomerID)
	if err == nil {
		details.Customer = customer
	} else if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("loadDetails: failed to load customer=%d: %v", appt.CustomerID, err)
		return nil, fmt.Errorf("%w: loadDetails - failed to load customer: %v", ErrInternal, err)
	}

	return details, nil
}

func checkScheduleAccess(shop *domain.Shop, callerID int64, role domain.Role) error {
	switch role {
	case domain.RoleManager:
		if shop.ManagerID == callerID {
			return nil
		}
	case domain.RoleShop:
		if shop.ID == callerID {
			return nil
		}
	}
	return ErrAccessDenied
}
