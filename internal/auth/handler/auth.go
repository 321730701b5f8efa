package handler

import (
	"net/http"

	"github.com/painel/painel-backend/internal/auth/service"
	"github.com/painel/painel-backend/internal/dashboard/session"
	"github.com/painel/painel-backend/pkg/errors"
	"github.com/painel/painel-backend/pkg/httputil"
	"github.com/painel/painel-backend/pkg/logger"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service *service.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  log,
	}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, response)
}

// Logout ends the current session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		httputil.Error(w, r, errors.Unauthorized("not authenticated"))
		return
	}

	h.service.Logout(r.Context(), sess.ID)
	httputil.NoContent(w)
}

// Me returns the current session
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		httputil.Error(w, r, errors.Unauthorized("not authenticated"))
		return
	}

	httputil.JSON(w, http.StatusOK, sess)
}
