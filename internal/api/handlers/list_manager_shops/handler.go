package list_manager_shops

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/api/middleware"
	"github.com/m04kA/SMC-ShopService/internal/domain"
	directoryService "github.com/m04kA/SMC-ShopService/internal/service/directory"
)

const (
	msgUnauthorized = "authentication required"
	msgShopNotFound = "shop not found"
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

// Handle GET /api/v1/manager/shops
// A manager sees every shop they own; a shop account sees itself.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /manager/shops - No principal in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var shops []domain.Shop
	var err error

	switch principal.Role {
	case domain.RoleShop:
		var shop *domain.Shop
		shop, err = h.directorySvc.GetShop(r.Context(), principal.UserID)
		if err == nil {
			shops = []domain.Shop{*shop}
		}
	default:
		shops, err = h.directorySvc.ListShopsForManager(r.Context(), principal.UserID)
	}

	if err != nil {
		switch {
		case errors.Is(err, directoryService.ErrShopNotFound):
			h.logger.Warn("GET /manager/shops - Shop not found: user_id=%d", principal.UserID)
			handlers.RespondNotFound(w, msgShopNotFound)
		default:
			h.logger.Error("GET /manager/shops - Failed: user_id=%d, error=%v", principal.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /manager/shops - Returned %d shops: user_id=%d, role=%s",
		len(shops), principal.UserID, principal.Role)
	handlers.RespondJSON(w, http.StatusOK, FromDomainShops(shops))
}
