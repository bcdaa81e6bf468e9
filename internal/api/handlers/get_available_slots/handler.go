package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ShopService/internal/usecase/get_available_slots"
)

const (
	msgInvalidEmployeeID  = "invalid employee_id parameter"
	msgInvalidShopID      = "invalid shop_id parameter"
	msgInvalidDate        = "invalid date parameter, expected YYYY-MM-DD"
	msgInvalidDuration    = "invalid duration parameter"
	msgEmployeeNotFound   = "employee not found"
	msgEmployeeNotInShop  = "employee does not work at this shop"
	msgInvalidSlotRequest = "invalid slot request"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots?employee_id&shop_id&date&duration
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	employeeID, err := strconv.ParseInt(query.Get("employee_id"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid employee_id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	shopID, err := strconv.ParseInt(query.Get("shop_id"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid shop_id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, query.Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		EmployeeID:      employeeID,
		ShopID:          shopID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrEmployeeNotFound):
			h.logger.Warn("GET /timeslots - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getAvailableSlots.ErrEmployeeNotInShop):
			h.logger.Warn("GET /timeslots - Employee not in shop: employee_id=%d, shop_id=%d", employeeID, shopID)
			handlers.RespondNotFound(w, msgEmployeeNotInShop)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /timeslots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotRequest)

		default:
			h.logger.Error("GET /timeslots - Failed to get slots: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timeslots - Returned %d slots: employee_id=%d, date=%s",
		len(result.Slots), employeeID, query.Get("date"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
