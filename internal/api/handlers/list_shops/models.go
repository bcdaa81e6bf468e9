package list_shops

import "github.com/m04kA/SMC-ShopService/internal/domain"

// ShopResponse is one shop visible through the booking token.
type ShopResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Address    *string `json:"address,omitempty"`
	Directions *string `json:"directions,omitempty"`
}

// ShopListResponse is the HTTP response model.
type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
}

// FromDomainShops converts shops to the HTTP model.
func FromDomainShops(shops []domain.Shop) *ShopListResponse {
	out := make([]ShopResponse, 0, len(shops))
	for _, s := range shops {
		out = append(out, ShopResponse{
			ID:         s.ID,
			Name:       s.Name,
			Address:    s.Address,
			Directions: s.Directions,
		})
	}
	return &ShopListResponse{Shops: out}
}
