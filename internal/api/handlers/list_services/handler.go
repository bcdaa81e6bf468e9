package list_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	directoryService "github.com/m04kA/SMC-ShopService/internal/service/directory"
)

const (
	msgInvalidEmployeeID = "invalid employee id"
	msgEmployeeNotFound  = "employee not found"
)

type Handler struct {
	catalogSvc   CatalogService
	directorySvc DirectoryService
	logger       Logger
}

func NewHandler(catalogSvc CatalogService, directorySvc DirectoryService, logger Logger) *Handler {
	return &Handler{
		catalogSvc:   catalogSvc,
		directorySvc: directorySvc,
		logger:       logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(mux.Vars(r)["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /employees/{id}/services - Invalid employee id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if _, err := h.directorySvc.GetEmployee(r.Context(), employeeID); err != nil {
		switch {
		case errors.Is(err, directoryService.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/services - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)
		default:
			h.logger.Error("GET /employees/{id}/services - Failed: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	services, err := h.catalogSvc.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		h.logger.Error("GET /employees/{id}/services - Failed: employee_id=%d, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees/{id}/services - Returned %d services: employee_id=%d", len(services), employeeID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(employeeID, services))
}
