package handler

import (
	"net/http"
	"strings"

	"github.com/painel/painel-backend/internal/dashboard/session"
	"github.com/painel/painel-backend/pkg/errors"
	"github.com/painel/painel-backend/pkg/httputil"
)

// RequireSession validates the bearer token and attaches its session to
// the request context
func (h *AuthHandler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.Error(w, r, errors.Unauthorized("missing authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.Error(w, r, errors.Unauthorized("invalid authorization header format"))
			return
		}

		sess, err := h.service.Resolve(r.Context(), parts[1])
		if err != nil {
			h.logger.Debug().Err(err).Msg("session validation failed")
			httputil.Error(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), sess)))
	})
}
