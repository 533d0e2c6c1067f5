package submission

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/pkg/response"
)

const listLimit = 100

// Handler for submission listings
type Handler struct {
	repo *Repository
}

// NewHandler creates submission handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/submissions. A database failure yields an empty
// list rather than an error; the gallery is best-effort.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.ListRecent(r.Context(), listLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list submissions")
		subs = []Submission{}
	}

	response.OK(w, map[string]interface{}{
		"submissions": subs,
		"count":       len(subs),
	})
}

// Routes returns submission routes
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
