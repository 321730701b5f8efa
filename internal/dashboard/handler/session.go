package handler

import (
	"net/http"

	"github.com/painel/painel-backend/internal/dashboard/session"
	"github.com/painel/painel-backend/pkg/errors"
	"github.com/painel/painel-backend/pkg/httputil"
)

// UpdateSessionRequest changes the navigation state of a session
type UpdateSessionRequest struct {
	ActiveTab   *string `json:"active_tab" validate:"omitempty,oneof=vendas estoque jornada colaboradores fluxo indicadores producao logistica"`
	Page        *int    `json:"page" validate:"omitempty,min=1"`
	PerPage     *int    `json:"per_page" validate:"omitempty,min=1,max=500"`
	ClearFilter bool    `json:"clear_filter"`
}

// GetSession returns the caller's session state
func (h *DashboardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		httputil.Error(w, r, errors.Unauthorized("not authenticated"))
		return
	}

	httputil.JSON(w, http.StatusOK, sess)
}

// UpdateSession changes the active tab, pagination or last filter
func (h *DashboardHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok || h.sessions == nil {
		httputil.Error(w, r, errors.Unauthorized("not authenticated"))
		return
	}

	var req UpdateSessionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	updated, err := h.sessions.Update(sess.ID, func(c *session.Context) {
		if req.ActiveTab != nil {
			c.ActiveTab = *req.ActiveTab
		}
		if req.Page != nil {
			c.Page = *req.Page
		}
		if req.PerPage != nil {
			c.PerPage = *req.PerPage
		}
		if req.ClearFilter {
			c.Filter = nil
		}
	})
	if err != nil {
		httputil.Error(w, r, errors.TokenExpired())
		return
	}

	httputil.JSON(w, http.StatusOK, updated)
}
