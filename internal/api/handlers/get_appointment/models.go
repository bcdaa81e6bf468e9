package get_appointment

import (
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// ServiceResponse is one service attached to the appointment.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// EmployeeResponse is the employee performing the appointment.
type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID              int64             `json:"id"`
	EmployeeID      int64             `json:"employeeId"`
	ShopID          int64             `json:"shopId"`
	StartAt         string            `json:"startAt"`
	DurationMinutes int               `json:"durationMinutes"`
	Price           float64           `json:"price"`
	Services        []ServiceResponse `json:"services"`
	Employee        *EmployeeResponse `json:"employee,omitempty"`
	CreatedAt       string            `json:"createdAt"`
}

// FromDomainDetails converts appointment details to the HTTP model.
func FromDomainDetails(details *domain.AppointmentDetails) *AppointmentResponse {
	services := make([]ServiceResponse, 0, len(details.Services))
	for _, s := range details.Services {
		services = append(services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	resp := &AppointmentResponse{
		ID:              details.ID,
		EmployeeID:      details.EmployeeID,
		ShopID:          details.ShopID,
		StartAt:         details.StartAt.Format(domain.DateTimeFormat),
		DurationMinutes: details.DurationMinutes,
		Price:           details.Price,
		Services:        services,
		CreatedAt:       details.CreatedAt.Format(time.RFC3339),
	}

	if details.Employee != nil {
		resp.Employee = &EmployeeResponse{ID: details.Employee.ID, Name: details.Employee.Name}
	}

	return resp
}
