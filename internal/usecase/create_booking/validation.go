package create_booking

import (
	"fmt"
	"time"
)

// validateRequest checks the request fields before any storage access.
func validateRequest(req *Request) error {
	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: service ids must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// validateStartTime rejects bookings that begin in the past.
func validateStartTime(startAt, now time.Time) error {
	if startAt.Before(now) {
		return fmt.Errorf("%w: start time is in the past", ErrInvalidInput)
	}
	return nil
}
