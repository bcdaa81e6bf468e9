package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/api/middleware"
	appointmentsService "github.com/m04kA/SMC-ShopService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "access denied"
)

type Handler struct {
	appointmentSvc AppointmentService
	logger         Logger
}

func NewHandler(appointmentSvc AppointmentService, logger Logger) *Handler {
	return &Handler{
		appointmentSvc: appointmentSvc,
		logger:         logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}
// The confirmation view of the customer who just booked. The booking link in
// the context scopes what the caller may see.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	details, err := h.appointmentSvc.GetByID(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("GET /appointments/{id} - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// The token only unlocks the customer's own appointments.
	if link, ok := middleware.BookingLinkFromContext(r.Context()); ok {
		if details.CustomerID != link.CustomerID {
			h.logger.Warn("GET /appointments/{id} - Customer mismatch: appointment_id=%d, customer_id=%d",
				appointmentID, link.CustomerID)
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
	}

	h.logger.Info("GET /appointments/{id} - OK: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDetails(details))
}
