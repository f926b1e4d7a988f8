package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/auth"
	"github.com/hrtools-br/ausencias-backend-go/internal/handler/http/response"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService           jwt.Service
	operatorPasswordHash string
}

func NewAuthHandler(jwtService jwt.Service, operatorPasswordHash string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:           jwtService,
		operatorPasswordHash: operatorPasswordHash,
	}
}

// Login exchanges the shared operator password for an access token.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.operatorPasswordHash), []byte(req.Password)); err != nil {
		response.HandleError(w, auth.ErrInvalidCredentials)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken()
	if err != nil {
		slog.Error("Failed to generate access token", "error", err)
		response.InternalServerError(w, "Failed to generate token")
		return
	}

	response.Success(w, auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}
