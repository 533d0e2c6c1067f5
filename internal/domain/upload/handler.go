package upload

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/pkg/imaging"
	"github.com/supermom/supermom-api/internal/pkg/response"
	"github.com/supermom/supermom-api/internal/pkg/storage"
)

// Handler for photo uploads and listings
type Handler struct {
	uploads   *storage.LocalStorage
	results   *storage.LocalStorage
	processor *imaging.Processor
	limiter   *Limiter
}

// NewHandler creates upload handler
func NewHandler(uploads, results *storage.LocalStorage, processor *imaging.Processor, limiter *Limiter) *Handler {
	return &Handler{
		uploads:   uploads,
		results:   results,
		processor: processor,
		limiter:   limiter,
	}
}

// UploadedFile describes a stored upload
type UploadedFile struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// Upload handles POST /api/upload
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	release, ok := h.limiter.TryAcquire()
	if !ok {
		response.ServiceUnavailable(w, "Server busy, please try again shortly")
		return
	}
	defer release()

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxFileSize)

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "image file is required (max 10MB)")
		return
	}
	defer file.Close()

	if !imaging.ValidateType(header.Filename) {
		response.BadRequest(w, "only JPEG, PNG and WebP images are allowed")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := uuid.New().String() + ext

	if err := h.uploads.Put(r.Context(), filename, file); err != nil {
		log.Error().Err(err).Msg("Failed to store upload")
		response.InternalError(w)
		return
	}

	// Oversized photos are shrunk in place; the original is kept on failure
	if err := h.processor.Compress(h.uploads.Path(filename)); err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("Compression failed, keeping original")
	}

	log.Info().
		Str("file", filename).
		Int64("size", header.Size).
		Msg("Photo uploaded")

	response.OK(w, map[string]interface{}{
		"file": UploadedFile{
			Filename:     filename,
			Path:         h.uploads.GetURL(filename),
			OriginalName: header.Filename,
			Size:         header.Size,
		},
	})
}

// ListUploads handles GET /api/uploads
func (h *Handler) ListUploads(w http.ResponseWriter, r *http.Request) {
	h.list(w, h.uploads, "uploads")
}

// ListResults handles GET /api/results
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	h.list(w, h.results, "results")
}

func (h *Handler) list(w http.ResponseWriter, store *storage.LocalStorage, kind string) {
	files, err := store.List()
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("Failed to list files")
		files = []storage.FileInfo{}
	}

	response.OK(w, map[string]interface{}{
		"files": files,
		"count": len(files),
	})
}

// Routes returns upload routes mounted at the API root
func Routes(h *Handler) func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/upload", h.Upload)
		r.Get("/uploads", h.ListUploads)
		r.Get("/results", h.ListResults)
	}
}
