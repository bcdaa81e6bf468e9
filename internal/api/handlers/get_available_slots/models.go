package get_available_slots

import (
	"github.com/m04kA/SMC-ShopService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ShopService/internal/usecase/get_available_slots"
)

// SlotsResponse is the HTTP response model. Slots are ascending
// "2006-01-02 15:04" start instants.
type SlotsResponse struct {
	EmployeeID      int64    `json:"employeeId"`
	ShopID          int64    `json:"shopId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		EmployeeID:      resp.EmployeeID,
		ShopID:          resp.ShopID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           resp.Slots,
	}
}
