package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService user.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService user.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Register implements AuthHandler.
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration successful", result)
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.ExpiresAt))
	response.SuccessWithMessage(w, "Login successful", result)
}
