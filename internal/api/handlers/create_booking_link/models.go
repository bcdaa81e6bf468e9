package create_booking_link

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

// CreateBookingLinkRequest is the HTTP request model.
type CreateBookingLinkRequest struct {
	Phone  string `json:"phone"`
	ShopID int64  `json:"shopId"`
}

// BookingLinkResponse is the HTTP response model. URL is the customer-facing
// booking page with the token already attached.
type BookingLinkResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ShopID    int64  `json:"shopId"`
	CreatedAt string `json:"createdAt"`
}

// FromDomainLink builds the response for a freshly issued link.
func FromDomainLink(link *domain.BookingLink, publicBookingURL string) *BookingLinkResponse {
	return &BookingLinkResponse{
		Token:     link.Token,
		URL:       fmt.Sprintf("%s?token=%s", publicBookingURL, link.Token),
		ShopID:    link.ShopID,
		CreatedAt: link.CreatedAt.Format(time.RFC3339),
	}
}
