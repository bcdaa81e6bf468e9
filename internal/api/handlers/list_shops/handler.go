package list_shops

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/api/middleware"
	"github.com/m04kA/SMC-ShopService/internal/domain"
	directoryService "github.com/m04kA/SMC-ShopService/internal/service/directory"
)

const (
	msgMissingLink  = "booking token is required"
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

// Handle GET /api/v1/shops
// A booking link is scoped to one shop, so the list holds exactly the shop
// the token was issued for.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	link, ok := middleware.BookingLinkFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /shops - No booking link in context")
		handlers.RespondUnauthorized(w, msgMissingLink)
		return
	}

	shop, err := h.directorySvc.GetShop(r.Context(), link.ShopID)
	if err != nil {
		switch {
		case errors.Is(err, directoryService.ErrShopNotFound):
			h.logger.Warn("GET /shops - Shop not found: shop_id=%d", link.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)
		default:
			h.logger.Error("GET /shops - Failed: shop_id=%d, error=%v", link.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops - OK: shop_id=%d", shop.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainShops([]domain.Shop{*shop}))
}
