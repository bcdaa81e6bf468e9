package create_booking_link

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/service/bookinglinks"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "phone and shopId are required"
	msgShopNotFound       = "shop not found"
)

type Handler struct {
	linkSvc          BookingLinkService
	publicBookingURL string
	logger           Logger
}

func NewHandler(linkSvc BookingLinkService, publicBookingURL string, logger Logger) *Handler {
	return &Handler{
		linkSvc:          linkSvc,
		publicBookingURL: publicBookingURL,
		logger:           logger,
	}
}

// Handle POST /api/v1/booking-links
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingLinkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-links - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Phone == "" || req.ShopID <= 0 {
		h.logger.Warn("POST /booking-links - Missing phone or shopId")
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	link, err := h.linkSvc.Generate(r.Context(), req.Phone, req.ShopID)
	if err != nil {
		switch {
		case errors.Is(err, bookinglinks.ErrShopNotFound):
			h.logger.Warn("POST /booking-links - Shop not found: shop_id=%d", req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)
		case errors.Is(err, bookinglinks.ErrInvalidInput):
			h.logger.Warn("POST /booking-links - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /booking-links - Failed to issue link: shop_id=%d, error=%v", req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-links - Link issued: link_id=%d, shop_id=%d", link.ID, req.ShopID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainLink(link, h.publicBookingURL))
}
