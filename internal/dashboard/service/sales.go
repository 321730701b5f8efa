package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
)

// DefaultTopSalespeople is how many sellers the ranking shows
const DefaultTopSalespeople = 15

// MonthlyRevenue sums total value per calendar month, from the first to the
// last month present, with zero for months without sales.
func MonthlyRevenue(sales []domain.Sale) []domain.MonthlyValue {
	series := make([]domain.MonthlyValue, 0)
	if len(sales) == 0 {
		return series
	}

	byMonth := make(map[time.Time]float64)
	first, last := domain.MonthStart(sales[0].Date), domain.MonthStart(sales[0].Date)
	for _, s := range sales {
		m := domain.MonthStart(s.Date)
		byMonth[m] += s.TotalValue
		if m.Before(first) {
			first = m
		}
		if m.After(last) {
			last = m
		}
	}

	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		series = append(series, domain.MonthlyValue{Month: m, Value: byMonth[m]})
	}
	return series
}

// ProfitByProduct sums profit per product, highest first.
func ProfitByProduct(sales []domain.Sale) []domain.LabeledValue {
	return sumBy(sales, func(s domain.Sale) (string, float64) { return s.Product, s.Profit }, true)
}

// TopSalespeople ranks sellers by revenue and keeps the first limit.
func TopSalespeople(sales []domain.Sale, limit int) []domain.LabeledValue {
	ranked := sumBy(sales, func(s domain.Sale) (string, float64) { return s.Salesperson, s.TotalValue }, true)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RevenueByRegion sums total value per region, in region name order.
func RevenueByRegion(sales []domain.Sale) []domain.LabeledValue {
	return sumBy(sales, func(s domain.Sale) (string, float64) { return s.Region, s.TotalValue }, false)
}

// sumBy groups sales by label and sums the value. Results are ordered by
// label, or by value descending (ties by label) when byValue is set.
func sumBy(sales []domain.Sale, fn func(domain.Sale) (string, float64), byValue bool) []domain.LabeledValue {
	totals := make(map[string]float64)
	for _, s := range sales {
		label, v := fn(s)
		totals[label] += v
	}

	out := make([]domain.LabeledValue, 0, len(totals))
	for _, label := range sortedKeys(totals) {
		out = append(out, domain.LabeledValue{Label: label, Value: totals[label]})
	}
	if byValue {
		slices.SortStableFunc(out, func(a, b domain.LabeledValue) int {
			return cmp.Compare(b.Value, a.Value)
		})
	}
	return out
}
