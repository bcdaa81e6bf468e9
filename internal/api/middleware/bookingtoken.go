package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/domain"
	"github.com/m04kA/SMC-ShopService/internal/service/bookinglinks"
)

type bookingLinkContextKey struct{}

const (
	// HeaderBookingToken carries the booking token when it is not passed as
	// a query parameter.
	HeaderBookingToken = "X-Booking-Token"

	msgMissingBookingToken = "booking token is required"
	msgUnknownBookingToken = "unknown booking token"
	msgExpiredBookingToken = "booking token expired"
	msgUsedBookingToken    = "booking token already used"
)

// LinkValidator resolves a token into a live booking link.
type LinkValidator interface {
	Validate(ctx context.Context, token string) (*domain.BookingLink, error)
}

// BookingToken authenticates the customer-facing routes. The token comes
// from the "token" query parameter or the X-Booking-Token header; the
// resolved link is stored in the request context. The link is only consumed
// when a booking commits, so reads through the same token stay possible
// until then.
func BookingToken(validator LinkValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.URL.Query().Get("token")
			if token == "" {
				token = r.Header.Get(HeaderBookingToken)
			}
			if token == "" {
				logger.Warn("%s %s - missing booking token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingBookingToken)
				return
			}

			link, err := validator.Validate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, bookinglinks.ErrLinkNotFound):
					logger.Warn("%s %s - unknown booking token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgUnknownBookingToken)
				case errors.Is(err, bookinglinks.ErrLinkExpired):
					logger.Warn("%s %s - expired booking token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgExpiredBookingToken)
				case errors.Is(err, bookinglinks.ErrLinkUsed):
					logger.Warn("%s %s - used booking token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgUsedBookingToken)
				default:
					handlers.RespondInternalError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), bookingLinkContextKey{}, link)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BookingLinkFromContext extracts the validated booking link, if any.
func BookingLinkFromContext(ctx context.Context) (*domain.BookingLink, bool) {
	link, ok := ctx.Value(bookingLinkContextKey{}).(*domain.BookingLink)
	return link, ok
}
