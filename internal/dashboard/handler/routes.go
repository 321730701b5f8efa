package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the dashboard endpoints. requireSession guards every route;
// pass nil to serve them without a login.
func (h *DashboardHandler) Routes(requireSession func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	if requireSession != nil {
		r.Use(requireSession)
	}

	r.Get("/filters", h.GetFilters)
	r.Get("/session", h.GetSession)
	r.Patch("/session", h.UpdateSession)

	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.ListSales)
		r.Get("/kpis", h.GetKPIs)
		r.Get("/overview", h.GetSalesOverview)
	})

	r.Get("/inventory", h.GetInventory)
	r.Get("/journal", h.GetWorkJournal)
	r.Get("/employees", h.GetEmployees)

	r.Route("/finance", func(r chi.Router) {
		r.Get("/cashflow", h.GetCashFlow)
		r.Get("/indicators", h.GetIndicators)
	})

	r.Route("/operations", func(r chi.Router) {
		r.Get("/production", h.GetProduction)
		r.Get("/logistics", h.GetLogistics)
	})

	r.Get("/dataset", h.GetDataset)
	r.Post("/dataset/regenerate", h.Regenerate)

	return r
}
