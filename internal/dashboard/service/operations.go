package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
)

// DefaultStateSelection is how many states the operations views select
// when the caller names none.
const DefaultStateSelection = 8

// FilterInventory keeps the snapshots of the given products. A nil list keeps all.
func FilterInventory(items []domain.InventorySnapshot, products []string) []domain.InventorySnapshot {
	set := optionalSet(products)
	out := make([]domain.InventorySnapshot, 0)
	for _, item := range items {
		if keep(set, item.Product) {
			out = append(out, item)
		}
	}
	return out
}

// StockByProduct sums current stock per product, in product order.
func StockByProduct(items []domain.InventorySnapshot) []domain.LabeledValue {
	totals := make(map[string]float64)
	for _, item := range items {
		totals[item.Product] += float64(item.CurrentStock)
	}

	out := make([]domain.LabeledValue, 0, len(totals))
	for _, p := range sortedKeys(totals) {
		out = append(out, domain.LabeledValue{Label: p, Value: totals[p]})
	}
	return out
}

// StockAtRisk lists the snapshots below their reorder point, sorted by
// product then state, with their share of all snapshots in percent.
func StockAtRisk(items []domain.InventorySnapshot) domain.StockRisk {
	risk := domain.StockRisk{Items: make([]domain.InventorySnapshot, 0)}
	for _, item := range items {
		if item.AtRisk() {
			risk.Items = append(risk.Items, item)
		}
	}
	slices.SortFunc(risk.Items, func(a, b domain.InventorySnapshot) int {
		return cmp.Or(cmp.Compare(a.Product, b.Product), cmp.Compare(a.State, b.State))
	})
	risk.AtRiskPct = float64(len(risk.Items)) / float64(max(len(items), 1)) * 100
	return risk
}

// CashFlow joins monthly revenue and expense totals inside [start, end]
// and accumulates the balance month by month. Zero bounds are open.
func CashFlow(revenue []domain.RevenueRecord, expenses []domain.ExpenseRecord, start, end time.Time) []domain.CashFlowRow {
	in := func(t time.Time) bool {
		return (start.IsZero() || !t.Before(start)) && (end.IsZero() || !t.After(end))
	}

	rows := make(map[time.Time]*domain.CashFlowRow)
	row := func(m time.Time) *domain.CashFlowRow {
		r, ok := rows[m]
		if !ok {
			r = &domain.CashFlowRow{Month: m}
			rows[m] = r
		}
		return r
	}
	for _, r := range revenue {
		if in(r.Date) {
			row(r.Date).Revenue += r.Value
		}
	}
	for _, e := range expenses {
		if in(e.Date) {
			row(e.Date).Expense += e.Value
		}
	}

	out := make([]domain.CashFlowRow, 0, len(rows))
	for _, r := range rows {
		r.Balance = r.Revenue - r.Expense
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b domain.CashFlowRow) int { return a.Month.Compare(b.Month) })

	var cumulative float64
	for i := range out {
		cumulative += out[i].Balance
		out[i].CumulativeBalance = cumulative
	}
	return out
}

// Indicators totals revenue and expenses and derives the net margin
// (revenue - expense) / max(revenue, 1).
func Indicators(revenue []domain.RevenueRecord, expenses []domain.ExpenseRecord) domain.FinancialIndicators {
	var ind domain.FinancialIndicators
	for _, r := range revenue {
		ind.TotalRevenue += r.Value
	}
	for _, e := range expenses {
		ind.TotalExpense += e.Value
	}
	ind.NetMargin = (ind.TotalRevenue - ind.TotalExpense) / max(ind.TotalRevenue, 1)
	return ind
}

// FilterProduction keeps the rows of the given states. A nil list keeps all.
func FilterProduction(rows []domain.ProductionRecord, states []string) []domain.ProductionRecord {
	set := optionalSet(states)
	out := make([]domain.ProductionRecord, 0)
	for _, r := range rows {
		if keep(set, r.State) {
			out = append(out, r)
		}
	}
	return out
}

// FilterLogistics keeps the rows of the given states. A nil list keeps all.
func FilterLogistics(rows []domain.LogisticsRecord, states []string) []domain.LogisticsRecord {
	set := optionalSet(states)
	out := make([]domain.LogisticsRecord, 0)
	for _, r := range rows {
		if keep(set, r.State) {
			out = append(out, r)
		}
	}
	return out
}

// ProductionStates returns the distinct states with production, sorted.
func ProductionStates(rows []domain.ProductionRecord) []string {
	set := make(map[string]struct{})
	for _, r := range rows {
		set[r.State] = struct{}{}
	}
	return sortedKeys(set)
}

// LogisticsStates returns the distinct states with deliveries, sorted.
func LogisticsStates(rows []domain.LogisticsRecord) []string {
	set := make(map[string]struct{})
	for _, r := range rows {
		set[r.State] = struct{}{}
	}
	return sortedKeys(set)
}

// defaultStates returns the first DefaultStateSelection of states.
func defaultStates(states []string) []string {
	if len(states) > DefaultStateSelection {
		return states[:DefaultStateSelection]
	}
	return states
}
