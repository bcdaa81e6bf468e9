package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
	serviceCatalog "github.com/m04kA/SMC-ShopService/internal/service/catalog"
)

// UseCase commits a booking: the overlap check, the appointment insert, the
// service attachment and the link consumption form one serializable
// transaction, so two racing requests for the same interval can never both
// succeed.
type UseCase struct {
	appointmentRepo AppointmentRepository
	directoryRepo   DirectoryRepository
	catalog         ServiceCatalog
	links           LinkConsumer
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directoryRepo DirectoryRepository,
	catalog ServiceCatalog,
	links LinkConsumer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directoryRepo:   directoryRepo,
		catalog:         catalog,
		links:           links,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: employee=%d, shop=%d, customer=%d, start=%s, services=%v",
		req.EmployeeID, req.ShopID, req.CustomerID, req.StartAt.Format(domain.DateTimeFormat), req.ServiceIDs)

	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time.
	now := uc.timeProvider.Now()

	if err := validateStartTime(req.StartAt, now); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	// 3. Resolve the employee.
	if _, err := uc.directoryRepo.GetEmployeeByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, directoryRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateBooking: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 4. Check the shop assignment.
	works, err := uc.directoryRepo.EmployeeWorksAtShop(ctx, req.EmployeeID, req.ShopID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check shop assignment: %v", err)
		return nil, fmt.Errorf("%w: failed to check shop assignment: %v", ErrInternal, err)
	}
	if !works {
		uc.logger.Warn("CreateBooking: employee id=%d does not work at shop id=%d", req.EmployeeID, req.ShopID)
		return nil, ErrEmployeeNotInShop
	}

	var result *domain.Appointment
	var resolvedServices []domain.Service

	// 5. The check-then-insert pair runs serializable; the tx manager retries
	// serialization failures, a genuine conflict is final.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Resolve the services and the final duration and price.
		services, totalDuration, totalPrice, err := uc.catalog.ResolveServices(txCtx, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, serviceCatalog.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: unknown service in %v", req.ServiceIDs)
				return ErrServiceNotFound
			}
			if errors.Is(err, serviceCatalog.ErrInvalidInput) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateBooking: failed to resolve services: %v", err)
			return fmt.Errorf("%w: failed to resolve services: %v", ErrInternal, err)
		}

		if totalDuration <= 0 || totalDuration > domain.MaxDurationMinutes {
			uc.logger.Warn("CreateBooking: total duration %d out of range", totalDuration)
			return fmt.Errorf("%w: total duration must be between 1 and %d minutes",
				ErrInvalidInput, domain.MaxDurationMinutes)
		}

		end := req.StartAt.Add(time.Duration(totalDuration) * time.Minute)

		// 5.2. Overlap guard.
		overlapping, err := uc.appointmentRepo.CountOverlapping(txCtx, req.EmployeeID, req.StartAt, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
		}
		if overlapping > 0 {
			uc.logger.Warn("CreateBooking: slot taken, %d overlapping appointments for employee=%d",
				overlapping, req.EmployeeID)
			return ErrTimeSlotTaken
		}

		// 5.3. Insert the appointment with its final price.
		appt := &domain.Appointment{
			EmployeeID:      req.EmployeeID,
			ShopID:          req.ShopID,
			CustomerID:      req.CustomerID,
			StartAt:         req.StartAt,
			DurationMinutes: totalDuration,
			Price:           totalPrice,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 5.4. Attach the resolved services in the same transaction. The
		// resolved list is deduplicated, the request list may not be.
		serviceIDs := make([]int64, len(services))
		for i, service := range services {
			serviceIDs[i] = service.ID
		}
		if err := uc.appointmentRepo.AttachServices(txCtx, created.ID, serviceIDs); err != nil {
			uc.logger.Error("CreateBooking: failed to attach services: %v", err)
			return fmt.Errorf("%w: failed to attach services: %v", ErrInternal, err)
		}

		// 5.5. Burn the booking link together with the booking.
		if req.LinkID > 0 {
			if err := uc.links.Consume(txCtx, req.LinkID); err != nil {
				uc.logger.Error("CreateBooking: failed to consume link id=%d: %v", req.LinkID, err)
				return fmt.Errorf("%w: failed to consume booking link: %v", ErrInternal, err)
			}
		}

		result = created
		resolvedServices = services
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		EmployeeID:      result.EmployeeID,
		ShopID:          result.ShopID,
		CustomerID:      result.CustomerID,
		StartAt:         result.StartAt,
		DurationMinutes: result.DurationMinutes,
		Price:           result.Price,
		Services:        resolvedServices,
		CreatedAt:       result.CreatedAt,
	}, nil
}
