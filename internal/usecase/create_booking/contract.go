package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// AppointmentRepository is the storage contract of the booking flow.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	AttachServices(ctx context.Context, appointmentID int64, serviceIDs []int64) error
	// CountOverlapping counts appointments of the employee intersecting
	// [start, end).
	CountOverlapping(ctx context.Context, employeeID int64, start, end time.Time) (int, error)
}

// DirectoryRepository resolves the employee and its shop assignment.
type DirectoryRepository interface {
	GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)
	EmployeeWorksAtShop(ctx context.Context, employeeID, shopID int64) (bool, error)
}

// ServiceCatalog resolves service ids into concrete services with the summed
// duration and price.
type ServiceCatalog interface {
	ResolveServices(ctx context.Context, ids []int64) ([]domain.Service, int, float64, error)
}

// LinkConsumer burns the booking link the request arrived on.
type LinkConsumer interface {
	Consume(ctx context.Context, id int64) error
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider returns wall clock time.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
