package swap

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/supermom/supermom-api/internal/pkg/response"
	"github.com/supermom/supermom-api/internal/pkg/storage"
	"github.com/supermom/supermom-api/internal/pkg/validator"
)

// Handler for the transformation API
type Handler struct {
	service *Service
	results *storage.LocalStorage
}

// NewHandler creates swap handler
func NewHandler(service *Service, results *storage.LocalStorage) *Handler {
	return &Handler{service: service, results: results}
}

// Transform handles POST /api/face-swap
func (h *Handler) Transform(w http.ResponseWriter, r *http.Request) {
	var req TransformRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Transform(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSourceNotFound):
			response.NotFound(w, "uploaded photo not found, please upload again")
		case errors.Is(err, ErrTemplateNotFound):
			response.NotFound(w, "no theme template is available")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result.Response())
}

// Download handles GET /api/download/{filename} and forces a save dialog
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	if !h.results.Exists(filename) {
		response.NotFound(w, "file not found")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	http.ServeFile(w, r, h.results.Path(filename))
}

// Routes returns swap routes mounted at the API root
func Routes(h *Handler) func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/face-swap", h.Transform)
		r.Get("/download/{filename}", h.Download)
	}
}
