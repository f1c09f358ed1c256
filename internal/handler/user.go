package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"bloglist/internal/httputil"
	"bloglist/internal/model"
	"bloglist/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /api/users.
// Creates an account; validation and uniqueness failures come back as
// domain errors with their status already decided.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, user)
}

// List handles GET /api/users.
// Returns every user with their blogs; password hashes never serialize.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		log.Printf("[UserHandler] list users: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}
