package handler

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/errors"
	"github.com/painel/painel-backend/pkg/httputil"
)

// Filter query parameters
const (
	paramStart      = "start"
	paramEnd        = "end"
	paramRegions    = "regions"
	paramProducts   = "products"
	paramCategories = "categories"
)

var filterParams = []string{paramStart, paramEnd, paramRegions, paramProducts, paramCategories}

type periodQuery struct {
	Start string `validate:"omitempty,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
}

type pageQuery struct {
	Page    int `validate:"min=1"`
	PerPage int `validate:"min=1,max=500"`
}

// hasFilter reports whether the query names any sales filter dimension
func hasFilter(q url.Values) bool {
	for _, p := range filterParams {
		if q.Has(p) {
			return true
		}
	}
	return false
}

// parseFilter builds a sales filter from the query. A dimension the query
// omits keeps the value of base; a dimension given empty selects nothing.
func parseFilter(q url.Values, base domain.FilterSpec) (domain.FilterSpec, error) {
	f := base

	start, end, err := parsePeriod(q)
	if err != nil {
		return domain.FilterSpec{}, err
	}
	if q.Has(paramStart) {
		f.Start = start
	}
	if q.Has(paramEnd) {
		f.End = end
	}
	if !f.Start.IsZero() && !f.End.IsZero() && f.End.Before(f.Start) {
		return domain.FilterSpec{}, errors.Validation(map[string]string{
			"End": "must not be before " + paramStart,
		})
	}

	if values, ok := listParam(q, paramRegions); ok {
		f.Regions = values
	}
	if values, ok := listParam(q, paramProducts); ok {
		f.Products = values
	}
	if values, ok := listParam(q, paramCategories); ok {
		f.Categories = values
	}

	return f, nil
}

// parsePeriod reads the optional start and end dates
func parsePeriod(q url.Values) (time.Time, time.Time, error) {
	pq := periodQuery{Start: q.Get(paramStart), End: q.Get(paramEnd)}
	if err := httputil.Validate(&pq); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := parseDate(pq.Start, "Start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(pq.End, "End")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// parseDate parses an optional date; empty yields the zero time
func parseDate(v, field string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(config.DateLayout, v)
	if err != nil {
		return time.Time{}, errors.Validation(map[string]string{field: "invalid date"})
	}
	return t, nil
}

// parsePage reads page and per_page, falling back to the given defaults
func parsePage(q url.Values, page, perPage int) (int, int, error) {
	pq := pageQuery{Page: page, PerPage: perPage}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errors.Validation(map[string]string{"Page": "invalid value"})
		}
		pq.Page = n
	}
	if v := q.Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errors.Validation(map[string]string{"PerPage": "invalid value"})
		}
		pq.PerPage = n
	}
	if err := httputil.Validate(&pq); err != nil {
		return 0, 0, err
	}
	return pq.Page, pq.PerPage, nil
}

// listParam reads a list given as repeated and/or comma separated values.
// ok is false when the parameter is absent; a present but blank parameter
// yields an empty, non-nil list.
func listParam(q url.Values, key string) ([]string, bool) {
	raw, ok := q[key]
	if !ok {
		return nil, false
	}

	values := []string{}
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values, true
}
