package share

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/pkg/response"
	"github.com/supermom/supermom-api/internal/pkg/validator"
)

const listLimit = 100

// Handler for share API
type Handler struct {
	service *Service
}

// NewHandler creates share handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// WhatsApp handles POST /api/share-whatsapp
func (h *Handler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	var req WhatsAppRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.service.WhatsApp(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPhone) {
			response.BadRequest(w, "invalid phone number")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, resp)
}

// Email handles POST /api/share-email
func (h *Handler) Email(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.service.Email(r.Context(), req); err != nil {
		if errors.Is(err, ErrSendFailed) {
			response.ServiceUnavailable(w, "Could not send the email, please try again")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"message": "Email sent"})
}

// Legacy handles POST /api/share
func (h *Handler) Legacy(w http.ResponseWriter, r *http.Request) {
	var req LegacyRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.service.Legacy(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidChannel):
			response.BadRequest(w, "channel must be 'whatsapp' or 'email'")
		case errors.Is(err, ErrInvalidPhone):
			response.BadRequest(w, "invalid phone number")
		case errors.Is(err, ErrSendFailed):
			response.ServiceUnavailable(w, "Could not send the email, please try again")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, resp)
}

// List handles GET /api/shares. Database failures yield an empty list.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	shares, err := h.service.ListRecent(r.Context(), listLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list shares")
		shares = []Share{}
	}

	response.OK(w, map[string]interface{}{
		"shares": shares,
		"count":  len(shares),
	})
}

// Routes returns share routes mounted at the API root
func Routes(h *Handler) func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/share-whatsapp", h.WhatsApp)
		r.Post("/share-email", h.Email)
		r.Post("/share", h.Legacy)
		r.Get("/shares", h.List)
	}
}
