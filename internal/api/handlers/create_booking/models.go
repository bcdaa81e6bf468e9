package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	createBooking "github.com/m04kA/SMC-ShopService/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request model. The customer and the shop
// come from the booking link, not from the body.
type CreateBookingRequest struct {
	EmployeeID int64   `json:"employeeId"`
	StartAt    string  `json:"startAt"` // "2025-10-15 10:00"
	ServiceIDs []int64 `json:"serviceIds"`
}

// ServiceResponse is one resolved service inside the booking response.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID              int64             `json:"id"`
	EmployeeID      int64             `json:"employeeId"`
	ShopID          int64             `json:"shopId"`
	CustomerID      int64             `json:"customerId"`
	StartAt         string            `json:"startAt"`
	DurationMinutes int               `json:"durationMinutes"`
	Price           float64           `json:"price"`
	Services        []ServiceResponse `json:"services"`
	CreatedAt       string            `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing the start instant in
// the server's local zone and filling the link-derived fields.
func (r *CreateBookingRequest) ToUseCaseRequest(link *domain.BookingLink) (*createBooking.Request, error) {
	startAt, err := time.ParseInLocation(domain.DateTimeFormat, r.StartAt, time.Local)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		EmployeeID: r.EmployeeID,
		ShopID:     link.ShopID,
		CustomerID: link.CustomerID,
		LinkID:     link.ID,
		StartAt:    startAt,
		ServiceIDs: r.ServiceIDs,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	services := make([]ServiceResponse, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		EmployeeID:      resp.EmployeeID,
		ShopID:          resp.ShopID,
		CustomerID:      resp.CustomerID,
		StartAt:         resp.StartAt.Format(domain.DateTimeFormat),
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price,
		Services:        services,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
