package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	"github.com/m04kA/SMC-ShopService/internal/auth"
	"github.com/m04kA/SMC-ShopService/internal/domain"
)

type principalContextKey struct{}

const (
	msgMissingToken = "missing or malformed Authorization header"
	msgInvalidToken = "invalid or expired token"
	msgManagerOnly  = "manager role required"
)

// TokenVerifier resolves a signed token into a principal.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Principal, error)
}

// Logger is the logging contract of the middleware.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth checks the Bearer token and stores the principal in the request
// context.
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Warn("%s %s - token rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireManager rejects principals whose role is not manager. Must run after
// Auth.
func RequireManager(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok || principal.Role != domain.RoleManager {
				logger.Warn("%s %s - manager role required", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgManagerOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PrincipalFromContext extracts the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (*auth.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(*auth.Principal)
	return principal, ok
}
