package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-ShopService/pkg/types"
)

// UseCase computes the free booking slots of one employee for one day.
type UseCase struct {
	appointmentRepo AppointmentRepository
	directoryRepo   DirectoryRepository
	timeProvider    TimeProvider
	businessStart   types.TimeString
	businessEnd     types.TimeString
	stepMinutes     int
	logger          Logger
}

// NewUseCase creates the use case with the given business window.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directoryRepo DirectoryRepository,
	businessStart, businessEnd types.TimeString,
	stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directoryRepo:   directoryRepo,
		timeProvider:    &RealTimeProvider{},
		businessStart:   businessStart,
		businessEnd:     businessEnd,
		stepMinutes:     stepMinutes,
		logger:          logger,
	}
}

// Execute runs the slot query. An unbookable day produces an empty slot list,
// not an error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: employee=%d, shop=%d, date=%s, duration=%d",
		req.EmployeeID, req.ShopID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time.
	now := uc.timeProvider.Now()

	// 3. Resolve the employee.
	if _, err := uc.directoryRepo.GetEmployeeByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, directoryRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetAvailableSlots: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 4. Check the shop assignment.
	works, err := uc.directoryRepo.EmployeeWorksAtShop(ctx, req.EmployeeID, req.ShopID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check shop assignment: %v", err)
		return nil, fmt.Errorf("%w: failed to check shop assignment: %v", ErrInternal, err)
	}
	if !works {
		uc.logger.Warn("GetAvailableSlots: employee id=%d does not work at shop id=%d", req.EmployeeID, req.ShopID)
		return nil, ErrEmployeeNotInShop
	}

	// 5. Fetch the appointments of the local calendar day.
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.GetByEmployeeOnRange(ctx, req.EmployeeID, req.ShopID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Generate the free slots.
	slots, err := generateSlots(
		uc.businessStart,
		uc.businessEnd,
		uc.stepMinutes,
		req.Date,
		now,
		req.DurationMinutes,
		appointments,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for employee=%d, date=%s",
		len(slots), req.EmployeeID, req.Date.Format(domain.DateFormat))

	return &Response{
		EmployeeID:      req.EmployeeID,
		ShopID:          req.ShopID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
