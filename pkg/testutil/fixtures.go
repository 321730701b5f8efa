package testutil

import (
	"time"

	"github.com/painel/painel-backend/internal/dashboard/aggregator"
	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/refdata"
)

// GridRegions and GridProducts span the fixture sales grid.
var (
	GridRegions  = []string{"Sul", "Sudeste", "Nordeste"}
	GridStates   = []string{"PR", "SP", "BA"}
	GridProducts = []string{"Produto A", "Produto B", "Produto C"}
)

var gridPrices = []float64{80, 120, 200}

// Day returns midnight UTC of the given date
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewSale builds a sale whose derived columns are consistent. Margin is 25%
// and there is no discount.
func NewSale(date time.Time, region, state, product, category string, qty int64, unitPrice float64, seller string) domain.Sale {
	total := domain.Round2(float64(qty) * unitPrice)
	return domain.Sale{
		Date:        date,
		Year:        int64(date.Year()),
		Month:       int64(date.Month()),
		Region:      region,
		State:       state,
		Product:     product,
		Category:    category,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		TotalValue:  total,
		MarginPct:   0.25,
		Profit:      domain.Round2(total * 0.25),
		Salesperson: seller,
		Customer:    "Silva Ltda.",
	}
}

// GridSales returns 18 sales: for every (region, product) of the 3x3 grid
// one sale in January 2024 and one in February 2024. Quantity is
// region index + product index + 1 and the category cycles with the product.
func GridSales() []domain.Sale {
	categories := refdata.Default().Categories
	sellers := []string{"Ana Silva", "Bruno Costa"}

	var jan, feb []domain.Sale
	for i, region := range GridRegions {
		for j, product := range GridProducts {
			qty := int64(i + j + 1)
			seller := sellers[(i+j)%len(sellers)]
			jan = append(jan, NewSale(Day(2024, 1, 10+i*3+j), region, GridStates[i], product, categories[j], qty, gridPrices[j], seller))
			feb = append(feb, NewSale(Day(2024, 2, 10+i*3+j), region, GridStates[i], product, categories[j], qty, gridPrices[j], seller))
		}
	}
	return append(jan, feb...)
}

// Employees returns a fixed staff of four
func Employees() []domain.Employee {
	return []domain.Employee{
		{ID: 1, Name: "Ana Silva", Department: "Comercial", Role: "Analista", Salary: 5000, Age: 30, TenureMonths: 12, Region: "Sul", State: "PR"},
		{ID: 2, Name: "Bruno Costa", Department: "Comercial", Role: "Senior", Salary: 8000, Age: 41, TenureMonths: 60, Region: "Sudeste", State: "SP"},
		{ID: 3, Name: "Carla Dias", Department: "TI", Role: "Gerente", Salary: 12000, Age: 45, TenureMonths: 100, Region: "Sudeste", State: "RJ"},
		{ID: 4, Name: "Diego Rocha", Department: "Logística", Role: "Coordenador", Salary: 7000, Age: 35, TenureMonths: 24, Region: "Nordeste", State: "BA"},
	}
}

// Dataset derives a complete dataset from GridSales and Employees with the
// real aggregators, seeded with 1.
func Dataset() *domain.Dataset {
	sales := GridSales()
	employees := Employees()
	agg := aggregator.New(1, refdata.Default())

	journal, err := agg.WorkJournal(employees, 8, Day(2024, 1, 1))
	if err != nil {
		panic(err)
	}
	revenue, expenses := agg.Finance(sales)
	production, logistics := agg.Operations(sales)

	return &domain.Dataset{
		Employees:   employees,
		Salespeople: []domain.Salesperson{{Name: "Ana Silva"}, {Name: "Bruno Costa"}},
		Sales:       sales,
		Inventory:   agg.Inventory(sales),
		WorkJournal: journal,
		Revenue:     revenue,
		Expenses:    expenses,
		Production:  production,
		Logistics:   logistics,
	}
}
