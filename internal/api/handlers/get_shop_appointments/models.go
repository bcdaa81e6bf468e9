package get_shop_appointments

import (
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// ServiceResponse is one service attached to an appointment.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// EmployeeResponse is the employee performing an appointment.
type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CustomerResponse is the customer an appointment was booked for.
type CustomerResponse struct {
	ID    int64   `json:"id"`
	Phone string  `json:"phone"`
	Name  *string `json:"name,omitempty"`
}

// AppointmentResponse is one appointment in the shop schedule.
type AppointmentResponse struct {
	ID              int64             `json:"id"`
	StartAt         string            `json:"startAt"`
	DurationMinutes int               `json:"durationMinutes"`
	Price           float64           `json:"price"`
	Services        []ServiceResponse `json:"services"`
	Employee        *EmployeeResponse `json:"employee,omitempty"`
	Customer        *CustomerResponse `json:"customer,omitempty"`
	CreatedAt       string            `json:"createdAt"`
}

// ScheduleResponse is the HTTP response model.
type ScheduleResponse struct {
	ShopID       int64                 `json:"shopId"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainDetailsList converts the schedule to the HTTP model.
func FromDomainDetailsList(shopID int64, items []*domain.AppointmentDetails) *ScheduleResponse {
	appointments := make([]AppointmentResponse, 0, len(items))
	for _, details := range items {
		appointments = append(appointments, fromDomainDetails(details))
	}
	return &ScheduleResponse{ShopID: shopID, Appointments: appointments}
}

func fromDomainDetails(details *domain.AppointmentDetails) AppointmentResponse {
	services := make([]ServiceResponse, 0, len(details.Services))
	for _, s := range details.Services {
		services = append(services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	resp := AppointmentResponse{
		ID:              details.ID,
		StartAt:         details.StartAt.Format(domain.DateTimeFormat),
		DurationMinutes: details.DurationMinutes,
		Price:           details.Price,
		Services:        services,
		CreatedAt:       details.CreatedAt.Format(time.RFC3339),
	}

	if details.Employee != nil {
		resp.Employee = &EmployeeResponse{ID: details.Employee.ID, Name: details.Employee.Name}
	}
	if details.Customer != nil {
		resp.Customer = &CustomerResponse{
			ID:    details.Customer.ID,
			Phone: details.Customer.Phone,
			Name:  details.Customer.Name,
		}
	}

	return resp
}
