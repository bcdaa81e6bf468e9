package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ShopService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStartAt     = "invalid startAt format, expected YYYY-MM-DD HH:MM"
	msgMissingLink        = "booking token is required"
	msgTimeSlotTaken      = "the selected time slot is already taken"
	msgEmployeeNotFound   = "employee not found"
	msgEmployeeNotInShop  = "employee does not work at this shop"
	msgServiceNotFound    = "service not found"
	msgInvalidBooking     = "invalid booking request"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	link, ok := middleware.BookingLinkFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - No booking link in context")
		handlers.RespondUnauthorized(w, msgMissingLink)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(link)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTimeSlotTaken):
			h.logger.Warn("POST /bookings - Time slot taken: employee_id=%d, start=%s", req.EmployeeID, req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgTimeSlotTaken)

		case errors.Is(err, createBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /bookings - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createBooking.ErrEmployeeNotInShop):
			h.logger.Warn("POST /bookings - Employee not in shop: employee_id=%d, shop_id=%d", req.EmployeeID, link.ShopID)
			handlers.RespondNotFound(w, msgEmployeeNotInShop)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_ids=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: employee_id=%d, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: appointment_id=%d, employee_id=%d, customer_id=%d",
		result.ID, result.EmployeeID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
