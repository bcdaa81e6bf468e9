package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// Request describes a booking submission. CustomerID, ShopID and LinkID come
// from the validated booking link, never from the client body.
type Request struct {
	EmployeeID int64
	ShopID     int64
	CustomerID int64
	LinkID     int64
	StartAt    time.Time
	ServiceIDs []int64
}

// Response carries the committed appointment with its resolved services.
type Response struct {
	ID              int64
	EmployeeID      int64
	ShopID          int64
	CustomerID      int64
	StartAt         time.Time
	DurationMinutes int
	Price           float64
	Services        []domain.Service
	CreatedAt       time.Time
}
