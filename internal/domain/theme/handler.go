package theme

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/supermom/supermom-api/internal/pkg/response"
)

// Handler for theme API
type Handler struct {
	service *Service
}

// NewHandler creates theme handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/themes
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	themes := h.service.List()
	response.OK(w, map[string]interface{}{
		"themes": themes,
		"count":  len(themes),
	})
}

// Get handles GET /api/themes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "theme not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, t)
}

// Routes returns theme routes
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	return r
}
