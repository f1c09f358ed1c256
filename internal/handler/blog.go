package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bloglist/internal/httputil"
	"bloglist/internal/model"
	"bloglist/internal/service"
	"bloglist/internal/transport/http/middleware"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List handles GET /api/blogs.
// Identity extraction has already run; the listing itself is public.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.List(r.Context())
	if err != nil {
		log.Printf("[BlogHandler] list blogs: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list blogs")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, blogs)
}

// Create handles POST /api/blogs.
// The gate has verified the token, but the handler still checks the
// resolved identity explicitly before trusting it.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httputil.WriteDomainError(w, model.ErrTokenMissing)
		return
	}

	var req model.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	blog, err := h.blogService.Create(r.Context(), user.ID, req)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, blog)
}

// Update handles PUT /api/blogs/{id}.
// Requires ownership, same as delete.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httputil.WriteDomainError(w, model.ErrTokenMissing)
		return
	}

	blogID, err := blogIDParam(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	var req model.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	blog, err := h.blogService.Update(r.Context(), blogID, user.ID, req)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, blog)
}

// Delete handles DELETE /api/blogs/{id}.
// Only the owner may delete; success answers 204 with no body.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httputil.WriteDomainError(w, model.ErrTokenMissing)
		return
	}

	blogID, err := blogIDParam(r)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	if err := h.blogService.Delete(r.Context(), blogID, user.ID); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// blogIDParam parses the {id} path segment; anything non-numeric is the
// malformed-id validation failure.
func blogIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, model.ErrMalformedID
	}
	return id, nil
}
