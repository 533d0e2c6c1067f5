package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/supermom/supermom-api/internal/pkg/jwt"
	"github.com/supermom/supermom-api/internal/pkg/response"
)

type contextKey string

const (
	// IdentifierKey holds the authenticated identifier (email or phone)
	IdentifierKey contextKey = "identifier"
	// ChannelKey holds the login channel (email, phone, google)
	ChannelKey contextKey = "channel"
)

// Auth validates the bearer session token and stores the identity in context
func Auth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Unauthorized(w, "Authorization header required")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				response.Unauthorized(w, "Authorization header must be a bearer token")
				return
			}

			claims, err := jwtService.ValidateSessionToken(token)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), IdentifierKey, claims.Identifier)
			ctx = context.WithValue(ctx, ChannelKey, claims.Channel)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentifierFromContext returns the authenticated identifier, if any
func IdentifierFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(IdentifierKey).(string)
	return id, ok
}

// ChannelFromContext returns the login channel, if any
func ChannelFromContext(ctx context.Context) (string, bool) {
	ch, ok := ctx.Value(ChannelKey).(string)
	return ch, ok
}
