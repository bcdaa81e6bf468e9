package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-ShopService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidServiceID   = "invalid service id"
	msgInvalidService     = "invalid service data"
	msgServiceNotFound    = "service not found"
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

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalogSvc.UpdateService(r.Context(), serviceID, req.Name, req.Price, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid service data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)
		default:
			h.logger.Error("PUT /services/{id} - Failed to update: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainService(service))
}
