// Package handler exposes the dashboard queries over HTTP for the display
// layer.
package handler

import (
	"net/http"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/service"
	"github.com/painel/painel-backend/internal/dashboard/session"
	"github.com/painel/painel-backend/pkg/httputil"
	"github.com/painel/painel-backend/pkg/logger"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	service  *service.DashboardService
	sessions *session.Store
	logger   *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler. sessions may be nil,
// in which case no per-session state is kept.
func NewDashboardHandler(svc *service.DashboardService, sessions *session.Store, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  svc,
		sessions: sessions,
		logger:   log,
	}
}

// FilterOptions lists the selectable values of every filter
type FilterOptions struct {
	Regions     []string          `json:"regions"`
	Products    []string          `json:"products"`
	Categories  []string          `json:"categories"`
	Departments []string          `json:"departments"`
	States      []string          `json:"states"`
	Tabs        []string          `json:"tabs"`
	Default     domain.FilterSpec `json:"default"`
}

// DatasetInfo describes the loaded dataset
type DatasetInfo struct {
	RowCounts map[string]int `json:"row_counts"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
}

// GetFilters returns the filter options and the default selection
func (h *DashboardHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Catalog()
	def := h.service.DefaultFilter()

	httputil.JSON(w, http.StatusOK, FilterOptions{
		Regions:     catalog.Regions,
		Products:    catalog.ProductNames(),
		Categories:  catalog.Categories,
		Departments: h.service.Departments(),
		States:      catalog.AllStates(),
		Tabs:        session.Tabs,
		Default:     def,
	})
}

// GetKPIs returns the headline figures for the requested filter
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	f, err := h.salesFilter(r)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, h.service.KPIs(f))
}

// GetSalesOverview returns the KPIs and every commercial chart series
func (h *DashboardHandler) GetSalesOverview(w http.ResponseWriter, r *http.Request) {
	f, err := h.salesFilter(r)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, h.service.SalesOverview(f))
}

// ListSales returns one page of the filtered fact table
func (h *DashboardHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	f, err := h.salesFilter(r)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	defPage, defPerPage := 1, 50
	sess, hasSession := session.FromContext(r.Context())
	if hasSession {
		defPage, defPerPage = sess.Page, sess.PerPage
	}
	page, perPage, err := parsePage(r.URL.Query(), defPage, defPerPage)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	sales := h.service.Sales(f)
	total := len(sales)
	from := min((page-1)*perPage, total)
	to := min(from+perPage, total)

	if hasSession {
		h.updateSession(sess.ID, func(c *session.Context) {
			c.Page, c.PerPage = page, perPage
		})
	}

	httputil.JSONWithMeta(w, http.StatusOK, sales[from:to], httputil.NewMeta(page, perPage, int64(total)))
}

// GetInventory returns stock per product and the items at risk
func (h *DashboardHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	products, _ := listParam(r.URL.Query(), paramProducts)
	httputil.JSON(w, http.StatusOK, h.service.Inventory(products))
}

// GetWorkJournal returns the overtime and absence series. entries=true also
// returns the matching journal rows. An absent departments parameter keeps
// every department; a present but empty one selects none.
func (h *DashboardHandler) GetWorkJournal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	departments, _ := listParam(q, "departments")
	httputil.JSON(w, http.StatusOK, h.service.WorkJournal(departments, q.Get("entries") == "true"))
}

// GetEmployees returns the staff listing with salary distributions.
// Unlike the other list parameters, an empty departments value keeps every
// employee, the same as leaving it out.
func (h *DashboardHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	departments, _ := listParam(r.URL.Query(), "departments")
	httputil.JSON(w, http.StatusOK, h.service.Employees(departments))
}

// GetCashFlow returns revenue against expenses per month
func (h *DashboardHandler) GetCashFlow(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r.URL.Query())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, h.service.CashFlow(start, end))
}

// GetIndicators returns the financial indicators
func (h *DashboardHandler) GetIndicators(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.Indicators())
}

// GetProduction returns production per month for the selected states
func (h *DashboardHandler) GetProduction(w http.ResponseWriter, r *http.Request) {
	states, _ := listParam(r.URL.Query(), "states")
	httputil.JSON(w, http.StatusOK, h.service.Production(states))
}

// GetLogistics returns logistics per month for the selected states
func (h *DashboardHandler) GetLogistics(w http.ResponseWriter, r *http.Request) {
	states, _ := listParam(r.URL.Query(), "states")
	httputil.JSON(w, http.StatusOK, h.service.Logistics(states))
}

// GetDataset describes the loaded dataset
func (h *DashboardHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	def := h.service.DefaultFilter()
	httputil.JSON(w, http.StatusOK, DatasetInfo{
		RowCounts: h.service.RowCounts(),
		Start:     def.Start,
		End:       def.End,
	})
}

// Regenerate rebuilds every artifact and swaps the dataset in
func (h *DashboardHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		httputil.Error(w, r, err)
		return
	}

	h.logger.Info().Str("request_id", httputil.GetRequestID(r.Context())).Msg("dataset regenerated on request")
	h.GetDataset(w, r)
}

// salesFilter resolves the filter of a sales query. Without filter
// parameters the session's last filter applies, then the default filter.
// The resolved filter becomes the session's last filter.
func (h *DashboardHandler) salesFilter(r *http.Request) (domain.FilterSpec, error) {
	q := r.URL.Query()
	sess, hasSession := session.FromContext(r.Context())

	base := h.service.DefaultFilter()
	if hasSession && sess.Filter != nil && !hasFilter(q) {
		return *sess.Filter, nil
	}

	f, err := parseFilter(q, base)
	if err != nil {
		return domain.FilterSpec{}, err
	}

	if hasSession {
		h.updateSession(sess.ID, func(c *session.Context) {
			c.Filter = &f
		})
	}
	return f, nil
}

func (h *DashboardHandler) updateSession(id string, fn func(*session.Context)) {
	if h.sessions == nil {
		return
	}
	if _, err := h.sessions.Update(id, fn); err != nil {
		h.logger.Debug().Err(err).Str("session_id", id).Msg("session gone before update")
	}
}
