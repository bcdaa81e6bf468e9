package list_employees

import "github.com/m04kA/SMC-ShopService/internal/domain"

// EmployeeResponse is one employee of the shop.
type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EmployeeListResponse is the HTTP response model.
type EmployeeListResponse struct {
	ShopID    int64              `json:"shopId"`
	Employees []EmployeeResponse `json:"employees"`
}

// FromDomainEmployees converts employees to the HTTP model.
func FromDomainEmployees(shopID int64, employees []domain.Employee) *EmployeeListResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, EmployeeResponse{ID: e.ID, Name: e.Name})
	}
	return &EmployeeListResponse{ShopID: shopID, Employees: out}
}
