// Package refdata holds the static enumerations the generators draw from:
// regions and their states, the product price table, categories,
// departments, roles, cost centers and the name pools.
package refdata

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when reference data cannot back a valid row.
var ErrInvalidCatalog = errors.New("invalid reference data")

// Product is a sellable item and its list price
type Product struct {
	Name      string
	BasePrice float64
}

// CostCenter is an expense account and the uniform range of its monthly cost
type CostCenter struct {
	Account string
	Min     float64
	Max     float64
}

// Catalog is the full set of reference data. It is treated as read-only.
type Catalog struct {
	Regions        []string
	StatesByRegion map[string][]string
	Products       []Product
	Categories     []string
	Departments    []string
	Roles          []string

	// SalesDepartments feed the salesperson pool.
	SalesDepartments []string
	// FieldDepartments get the heavier overtime profile in the work journal.
	FieldDepartments []string

	CostCenters []CostCenter

	FirstNames      []string
	LastNames       []string
	CompanySuffixes []string
}

// Validate fails fast on reference data that would produce invalid rows.
func (c Catalog) Validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("%w: no regions", ErrInvalidCatalog)
	}
	seen := make(map[string]string)
	for _, region := range c.Regions {
		states, ok := c.StatesByRegion[region]
		if !ok || len(states) == 0 {
			return fmt.Errorf("%w: region %q has no states", ErrInvalidCatalog, region)
		}
		for _, state := range states {
			if other, dup := seen[state]; dup && other != region {
				return fmt.Errorf("%w: state %q mapped to %q and %q", ErrInvalidCatalog, state, other, region)
			}
			seen[state] = region
		}
	}
	if len(c.Products) == 0 {
		return fmt.Errorf("%w: no products", ErrInvalidCatalog)
	}
	for _, p := range c.Products {
		if p.Name == "" || p.BasePrice <= 0 {
			return fmt.Errorf("%w: product %q needs a positive base price", ErrInvalidCatalog, p.Name)
		}
	}
	for _, cc := range c.CostCenters {
		if cc.Max < cc.Min {
			return fmt.Errorf("%w: cost center %q has an empty range", ErrInvalidCatalog, cc.Account)
		}
	}

	for name, list := range map[string][]string{
		"categories":       c.Categories,
		"departments":      c.Departments,
		"roles":            c.Roles,
		"first names":      c.FirstNames,
		"last names":       c.LastNames,
		"company suffixes": c.CompanySuffixes,
	} {
		if len(list) == 0 {
			return fmt.Errorf("%w: no %s", ErrInvalidCatalog, name)
		}
	}

	return nil
}

// StatesOf returns the states of region.
func (c Catalog) StatesOf(region string) ([]string, error) {
	states, ok := c.StatesByRegion[region]
	if !ok || len(states) == 0 {
		return nil, fmt.Errorf("%w: region %q has no states", ErrInvalidCatalog, region)
	}
	return states, nil
}

// RegionOf returns the region a state belongs to.
func (c Catalog) RegionOf(state string) (string, bool) {
	for _, region := range c.Regions {
		for _, s := range c.StatesByRegion[region] {
			if s == state {
				return region, true
			}
		}
	}
	return "", false
}

// ProductNames returns the product names in catalog order.
func (c Catalog) ProductNames() []string {
	names := make([]string, len(c.Products))
	for i, p := range c.Products {
		names[i] = p.Name
	}
	return names
}

// AllStates returns every state, grouped by region in catalog order.
func (c Catalog) AllStates() []string {
	var states []string
	for _, region := range c.Regions {
		states = append(states, c.StatesByRegion[region]...)
	}
	return states
}

// IsFieldDepartment reports whether department gets the heavier overtime profile.
func (c Catalog) IsFieldDepartment(department string) bool {
	return contains(c.FieldDepartments, department)
}

// IsSalesDepartment reports whether department feeds the salesperson pool.
func (c Catalog) IsSalesDepartment(department string) bool {
	return contains(c.SalesDepartments, department)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
