package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-ShopService/internal/service/catalog"
)

const (
	msgInvalidServiceID = "invalid service id"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	catalogSvc CatalogService
	logger     Logger
}

func NewHandler(catalogSvc CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		logger:     logger,
	}
}

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.catalogSvc.DeleteService(r.Context(), serviceID); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
