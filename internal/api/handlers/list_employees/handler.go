package list_employees

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	directoryService "github.com/m04kA/SMC-ShopService/internal/service/directory"
)

const (
	msgInvalidShopID = "invalid shop id"
	msgShopNotFound  = "shop not found"
)

type Handler struct {
	directorySvc DirectoryService
	logger       Logger
}

func NewHandler(directorySvc DirectoryService, logger Logger) *Handler {
	return &Handler{
		directorySvc: directorySvc,
		logger:       logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/employees - Invalid shop id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	employees, err := h.directorySvc.ListEmployees(r.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, directoryService.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/employees - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)
		default:
			h.logger.Error("GET /shops/{id}/employees - Failed: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/employees - Returned %d employees: shop_id=%d", len(employees), shopID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainEmployees(shopID, employees))
}
