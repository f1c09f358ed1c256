package handler

import (
	"encoding/json"
	"net/http"

	"bloglist/internal/httputil"
	"bloglist/internal/model"
	"bloglist/internal/service"
)

// AuthHandler groups authentication endpoints and their dependencies.
type AuthHandler struct {
	userService  *service.UserService
	tokenService *service.TokenService
}

func NewAuthHandler(userService *service.UserService, tokenService *service.TokenService) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
	}
}

// Login handles POST /api/login.
// Verifies credentials and answers with a signed bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	token, err := h.tokenService.Issue(service.Claims{
		Username: user.Username,
		UserID:   user.ID,
	})
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
