package aggregator

import (
	"cmp"
	"slices"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/sampling"
)

const (
	minEfficiency = 50
	maxEfficiency = 99.5
)

type monthState struct {
	month time.Time
	state string
}

type monthStateTotals struct {
	quantity int64
	orders   int64
	value    float64
}

// Operations builds the monthly production and logistics tables, one row
// per (month, state) seen in sales, sorted by month then state. All
// production draws come before the logistics draws.
func (a *Aggregator) Operations(sales []domain.Sale) ([]domain.ProductionRecord, []domain.LogisticsRecord) {
	totals := make(map[monthState]*monthStateTotals)
	for _, s := range sales {
		k := monthState{domain.MonthStart(s.Date), s.State}
		t, ok := totals[k]
		if !ok {
			t = &monthStateTotals{}
			totals[k] = t
		}
		t.quantity += s.Quantity
		t.orders++
		t.value += s.TotalValue
	}

	keys := make([]monthState, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y monthState) int {
		return cmp.Or(x.month.Compare(y.month), cmp.Compare(x.state, y.state))
	})

	src := sampling.New(a.seed, sampling.StreamOperations)

	production := make([]domain.ProductionRecord, 0, len(keys))
	for _, k := range keys {
		t := totals[k]
		defects := int64(src.Uniform(0.5, 3.5) * float64(t.orders))
		production = append(production, domain.ProductionRecord{
			Month:         k.month,
			State:         k.state,
			QtyProduced:   t.quantity,
			Defects:       defects,
			EfficiencyPct: Efficiency(t.quantity, defects),
		})
	}

	logistics := make([]domain.LogisticsRecord, 0, len(keys))
	for _, k := range keys {
		t := totals[k]
		logistics = append(logistics, domain.LogisticsRecord{
			Month:           k.month,
			State:           k.state,
			OrdersCount:     t.orders,
			FreightCost:     src.Uniform(0.03, 0.08) * t.value,
			AvgDeliveryDays: domain.Round2(src.Uniform(2.0, 8.0)),
		})
	}

	return production, logistics
}

// Efficiency is the share of non-defective units, clipped to [50, 99.5] and
// rounded to two decimals. A zero quantity counts as one.
func Efficiency(qty, defects int64) float64 {
	pct := 100 - float64(defects)/float64(max(qty, 1))*100
	return domain.Round2(min(max(pct, minEfficiency), maxEfficiency))
}
