package auth

import (
	"errors"
	"net/http"

	"github.com/supermom/supermom-api/internal/middleware"
	"github.com/supermom/supermom-api/internal/pkg/response"
	"github.com/supermom/supermom-api/internal/pkg/validator"
)

// Handler for auth API
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SendOTP handles POST /api/auth/send-otp
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	devCode, err := h.service.SendOTP(r.Context(), req.Identifier, req.Channel)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidChannel):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrDeliveryFailed):
			response.ServiceUnavailable(w, "Could not deliver the code, please try again")
		default:
			response.InternalError(w)
		}
		return
	}

	data := map[string]interface{}{"message": "Code sent"}
	if devCode != "" {
		data["dev_code"] = devCode
	}
	response.OK(w, data)
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.VerifyOTP(r.Context(), req.Identifier, req.Code)
	if err != nil {
		if errors.Is(err, ErrInvalidCode) {
			response.Unauthorized(w, "Invalid or expired code")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, session)
}

// GoogleLogin handles POST /api/auth/google
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.GoogleLogin(r.Context(), req.Credential)
	if err != nil {
		if errors.Is(err, ErrInvalidGoogleJWT) {
			response.Unauthorized(w, "Invalid Google credential")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, session)
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identifier, ok := middleware.IdentifierFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}
	channel, _ := middleware.ChannelFromContext(r.Context())

	response.OK(w, MeResponse{Identifier: identifier, Channel: channel})
}
