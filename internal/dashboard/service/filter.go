// Package service is the filter and query layer: it narrows the fact table
// with a FilterSpec and reduces tables into chart-ready series.
package service

import (
	"slices"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
)

// FilterSales returns the sales matching every predicate of f, in input
// order. Each set predicate is a membership test, so an empty set matches
// nothing. The bounds are calendar days: only the date of f.Start and f.End
// counts, whatever their clock or zone, and the end bound covers the whole
// end day.
func FilterSales(sales []domain.Sale, f domain.FilterSpec) []domain.Sale {
	regions := toSet(f.Regions)
	products := toSet(f.Products)
	categories := toSet(f.Categories)

	var start, endExclusive time.Time
	if !f.Start.IsZero() {
		start = utcDay(f.Start)
	}
	if !f.End.IsZero() {
		endExclusive = utcDay(f.End).AddDate(0, 0, 1)
	}

	out := make([]domain.Sale, 0)
	for _, s := range sales {
		if !start.IsZero() && s.Date.Before(start) {
			continue
		}
		if !endExclusive.IsZero() && !s.Date.Before(endExclusive) {
			continue
		}
		if _, ok := regions[s.Region]; !ok {
			continue
		}
		if _, ok := products[s.Product]; !ok {
			continue
		}
		if _, ok := categories[s.Category]; !ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ComputeKPIs reduces sales to revenue, profit, order count and average
// ticket. The average ticket of an empty set is zero.
func ComputeKPIs(sales []domain.Sale) domain.KPIs {
	var k domain.KPIs
	for _, s := range sales {
		k.Revenue += s.TotalValue
		k.Profit += s.Profit
	}
	k.Orders = len(sales)
	if k.Orders > 0 {
		k.AverageTicket = k.Revenue / float64(k.Orders)
	}
	return k
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// optionalSet is toSet for secondary filters, where a nil slice means no
// filter at all and a non-nil empty slice still matches nothing.
func optionalSet(values []string) map[string]struct{} {
	if values == nil {
		return nil
	}
	return toSet(values)
}

// keep reports whether v passes an optional set filter.
func keep(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}

// utcDay maps the calendar date of t, read in t's own zone, to midnight UTC,
// the zone sale dates are stored in.
func utcDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
