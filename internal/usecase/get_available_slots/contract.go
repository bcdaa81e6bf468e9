package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// AppointmentRepository is the storage contract for reading the day schedule.
type AppointmentRepository interface {
	// GetByEmployeeOnRange fetches the appointments of an employee at a shop
	// whose start falls inside [rangeStart, rangeEnd).
	GetByEmployeeOnRange(ctx context.Context, employeeID, shopID int64, rangeStart, rangeEnd time.Time) ([]*domain.Appointment, error)
}

// DirectoryRepository resolves the employee and its shop assignment.
type DirectoryRepository interface {
	GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)
	EmployeeWorksAtShop(ctx context.Context, employeeID, shopID int64) (bool, error)
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
