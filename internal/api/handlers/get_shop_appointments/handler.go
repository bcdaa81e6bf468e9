package get_shop_appointments

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
	msgInvalidShopID = "invalid shop id"
	msgShopNotFound  = "shop not found"
	msgAccessDenied  = "access denied"
	msgUnauthorized  = "authentication required"
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

// Handle GET /api/v1/shops/{shopId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /shops/{id}/appointments - No principal in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/appointments - Invalid shop id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	details, err := h.appointmentSvc.GetForShop(r.Context(), shopID, principal.UserID, principal.Role)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/appointments - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /shops/{id}/appointments - Access denied: shop_id=%d, user_id=%d",
				shopID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /shops/{id}/appointments - Failed: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/appointments - Returned %d appointments: shop_id=%d", len(details), shopID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDetailsList(shopID, details))
}
