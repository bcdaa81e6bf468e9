package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShopService/internal/api/handlers"
	authService "github.com/m04kA/SMC-ShopService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "username and password are required"
	msgInvalidCredentials = "invalid username or password"
)

type Handler struct {
	authSvc AuthService
	logger  Logger
}

func NewHandler(authSvc AuthService, logger Logger) *Handler {
	return &Handler{
		authSvc: authSvc,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Username == "" || req.Password == "" {
		h.logger.Warn("POST /auth/login - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	result, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials for username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /auth/login - Login failed for username=%q: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User id=%d role=%s signed in", result.UserID, result.Role)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Role:   string(result.Role),
		Name:   result.Name,
	})
}
