package appointments

import (
	"context"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// AppointmentRepository is the storage behind appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByShop(ctx context.Context, shopID int64) ([]*domain.Appointment, error)
}

// CatalogRepository resolves the services attached to an appointment.
type CatalogRepository interface {
	ListForAppointment(ctx context.Context, appointmentID int64) ([]domain.Service, error)
}

// DirectoryRepository resolves shops and employees referenced by appointments.
type DirectoryRepository interface {
	GetShopByID(ctx context.Context, id int64) (*domain.Shop, error)
	GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// CustomerRepository resolves the customers referenced by appointments.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
