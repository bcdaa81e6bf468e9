package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-ShopService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidService     = "invalid service data"
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalogSvc.CreateService(r.Context(), req.Name, req.Price, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid service data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)
		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d", service.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainService(service))
}
