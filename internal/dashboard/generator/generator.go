// Package generator builds the base tables of the dataset: employees,
// salespeople and the sales fact table.
//
// Every table draws from its own seeded stream, in row order, with the
// fields of a row drawn in column order. Output is a pure function of the
// seed, the catalog and the call arguments.
package generator

import (
	"fmt"
	"slices"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/refdata"
	"github.com/painel/painel-backend/internal/dashboard/sampling"
)

var (
	discounts       = []float64{0, 0.05, 0.10, 0.15}
	discountWeights = []float64{0.60, 0.20, 0.15, 0.05}
)

// Generator produces base tables from a seed and a reference catalog
type Generator struct {
	seed    uint64
	catalog refdata.Catalog
}

// New creates a generator. It fails with refdata.ErrInvalidCatalog when the
// catalog cannot back valid rows.
func New(seed uint64, catalog refdata.Catalog) (*Generator, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return &Generator{seed: seed, catalog: catalog}, nil
}

// Seed returns the generator's seed
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Catalog returns the reference data the generator draws from
func (g *Generator) Catalog() refdata.Catalog {
	return g.catalog
}

// GenerateEmployees creates n employees with sequential IDs starting at 1.
func (g *Generator) GenerateEmployees(n int) ([]domain.Employee, error) {
	if n < 0 {
		return nil, fmt.Errorf("employees count must not be negative, got %d", n)
	}

	src := sampling.New(g.seed, sampling.StreamEmployees)
	employees := make([]domain.Employee, 0, n)

	for i := 0; i < n; i++ {
		name := g.personName(src)
		department := src.Pick(g.catalog.Departments)
		role := src.Pick(g.catalog.Roles)
		salary := max(1800, domain.Round2(src.Normal(7000, 2500)))
		age := src.IntBetween(19, 61)
		tenure := src.IntBetween(1, 119)
		region, state, err := g.location(src)
		if err != nil {
			return nil, err
		}

		employees = append(employees, domain.Employee{
			ID:           int64(i + 1),
			Name:         name,
			Department:   department,
			Role:         role,
			Salary:       salary,
			Age:          int64(age),
			TenureMonths: int64(tenure),
			Region:       region,
			State:        state,
		})
	}

	return employees, nil
}

// GenerateSalespeople returns exactly n salespeople. Names come from the
// employees of the sales departments, unique and in employee order, then
// synthetic names fill the remainder.
func (g *Generator) GenerateSalespeople(employees []domain.Employee, n int) ([]domain.Salesperson, error) {
	if n < 0 {
		return nil, fmt.Errorf("salespeople count must not be negative, got %d", n)
	}

	salespeople := make([]domain.Salesperson, 0, n)
	seen := make(map[string]struct{})

	for _, e := range employees {
		if len(salespeople) == n {
			break
		}
		if !g.catalog.IsSalesDepartment(e.Department) {
			continue
		}
		if _, dup := seen[e.Name]; dup {
			continue
		}
		seen[e.Name] = struct{}{}
		salespeople = append(salespeople, domain.Salesperson{Name: e.Name})
	}

	src := sampling.New(g.seed, sampling.StreamSalespeople)
	for len(salespeople) < n {
		salespeople = append(salespeople, domain.Salesperson{Name: g.personName(src)})
	}

	return salespeople, nil
}

// GenerateSales creates n sales dated uniformly over the days of
// [start, end], sorted by date. When salespeople is empty every sale gets a
// synthetic seller name.
func (g *Generator) GenerateSales(n int, start, end time.Time, salespeople []domain.Salesperson) ([]domain.Sale, error) {
	if n < 0 {
		return nil, fmt.Errorf("sales count must not be negative, got %d", n)
	}

	first := dayOf(start)
	last := dayOf(end)
	if last.Before(first) {
		return nil, fmt.Errorf("sales period ends (%s) before it starts (%s)",
			last.Format(time.DateOnly), first.Format(time.DateOnly))
	}
	days := int(last.Sub(first).Hours()/24) + 1

	src := sampling.New(g.seed, sampling.StreamSales)
	sales := make([]domain.Sale, 0, n)

	for i := 0; i < n; i++ {
		date := first.AddDate(0, 0, src.IntBetween(0, days-1))
		region, state, err := g.location(src)
		if err != nil {
			return nil, err
		}
		product := g.catalog.Products[src.IntBetween(0, len(g.catalog.Products)-1)]
		category := src.Pick(g.catalog.Categories)
		quantity := src.IntBetween(1, 19)
		unitPrice := domain.Round2(product.BasePrice * src.Uniform(0.9, 1.2))
		discount := discounts[src.Weighted(discountWeights)]
		total := domain.Round2(float64(quantity) * unitPrice * (1 - discount))
		margin := src.Uniform(0.15, 0.45)

		var seller string
		if len(salespeople) > 0 {
			seller = salespeople[src.IntBetween(0, len(salespeople)-1)].Name
		} else {
			seller = g.personName(src)
		}

		sales = append(sales, domain.Sale{
			Date:        date,
			Year:        int64(date.Year()),
			Month:       int64(date.Month()),
			Region:      region,
			State:       state,
			Product:     product.Name,
			Category:    category,
			Quantity:    int64(quantity),
			UnitPrice:   unitPrice,
			Discount:    discount,
			TotalValue:  total,
			MarginPct:   margin,
			Profit:      domain.Round2(total * margin),
			Salesperson: seller,
			Customer:    g.companyName(src),
		})
	}

	slices.SortStableFunc(sales, func(a, b domain.Sale) int {
		return a.Date.Compare(b.Date)
	})

	return sales, nil
}

// location draws a region and then a state of that region.
func (g *Generator) location(src *sampling.Source) (string, string, error) {
	region := src.Pick(g.catalog.Regions)
	states, err := g.catalog.StatesOf(region)
	if err != nil {
		return "", "", err
	}
	return region, src.Pick(states), nil
}

func (g *Generator) personName(src *sampling.Source) string {
	return src.Pick(g.catalog.FirstNames) + " " + src.Pick(g.catalog.LastNames)
}

func (g *Generator) companyName(src *sampling.Source) string {
	return src.Pick(g.catalog.LastNames) + " " + src.Pick(g.catalog.CompanySuffixes)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
