package list_services

import "github.com/m04kA/SMC-ShopService/internal/domain"

// ServiceResponse is one service the employee can perform.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse is the HTTP response model.
type ServiceListResponse struct {
	EmployeeID int64             `json:"employeeId"`
	Services   []ServiceResponse `json:"services"`
}

// FromDomainServices converts services to the HTTP model.
func FromDomainServices(employeeID int64, services []domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &ServiceListResponse{EmployeeID: employeeID, Services: out}
}
