package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/generator"
	"github.com/painel/painel-backend/internal/dashboard/refdata"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sale(date time.Time, product, state string, qty int64, total float64) domain.Sale {
	return domain.Sale{
		Date:       date,
		Year:       int64(date.Year()),
		Month:      int64(date.Month()),
		Product:    product,
		State:      state,
		Quantity:   qty,
		TotalValue: total,
	}
}

func generatedSales(t *testing.T, n int) []domain.Sale {
	t.Helper()
	g, err := generator.New(42, refdata.Default())
	require.NoError(t, err)
	sales, err := g.GenerateSales(n, day(2024, 1, 1), day(2025, 10, 1), nil)
	require.NoError(t, err)
	return sales
}

func TestInventory(t *testing.T) {
	a := New(42, refdata.Default())
	sales := []domain.Sale{
		sale(day(2024, 1, 3), "Produto B", "SP", 100, 1000),
		sale(day(2024, 1, 5), "Produto A", "RS", 5, 400),
		sale(day(2024, 2, 1), "Produto B", "SP", 50, 500),
		sale(day(2024, 2, 9), "Produto A", "PR", 10, 800),
	}

	inv := a.Inventory(sales)
	require.Len(t, inv, 3)

	assert.Equal(t, "Produto A", inv[0].Product)
	assert.Equal(t, "PR", inv[0].State)
	assert.Equal(t, "Produto A", inv[1].Product)
	assert.Equal(t, "RS", inv[1].State)
	assert.Equal(t, "Produto B", inv[2].Product)
	assert.Equal(t, "SP", inv[2].State)

	// 0.3 × 150 sold
	assert.Equal(t, int64(45), inv[2].ReorderPoint)
	assert.Equal(t, int64(20), inv[0].ReorderPoint)

	assert.GreaterOrEqual(t, inv[2].CurrentStock, int64(75))
	assert.Less(t, inv[2].CurrentStock, int64(300))
}

func TestInventory_Invariants(t *testing.T) {
	a := New(42, refdata.Default())
	sales := generatedSales(t, 3000)

	observed := map[[2]string]bool{}
	for _, s := range sales {
		observed[[2]string{s.Product, s.State}] = true
	}

	inv := a.Inventory(sales)
	assert.Len(t, inv, len(observed))
	for _, row := range inv {
		assert.GreaterOrEqual(t, row.ReorderPoint, int64(20))
		assert.True(t, observed[[2]string{row.Product, row.State}], "invented key %s/%s", row.Product, row.State)
		assert.GreaterOrEqual(t, row.MonthlyTurnover, 0.5)
		assert.LessOrEqual(t, row.MonthlyTurnover, 4.0)
	}
}

func TestInventory_Empty(t *testing.T) {
	inv := New(42, refdata.Default()).Inventory(nil)
	assert.NotNil(t, inv)
	assert.Empty(t, inv)
}

func TestWorkJournal(t *testing.T) {
	a := New(42, refdata.Default())
	employees := []domain.Employee{
		{ID: 1, Name: "Ana Silva", Department: "Comercial"},
		{ID: 2, Name: "Bruno Costa", Department: "TI"},
	}
	epoch := day(2024, 1, 1)

	entries, err := a.WorkJournal(employees, 60, epoch)
	require.NoError(t, err)
	require.Len(t, entries, 120)

	seen := map[[2]int64]bool{}
	for i, e := range entries {
		key := [2]int64{e.EmployeeID, e.WeekIndex}
		assert.False(t, seen[key], "duplicate entry for employee %d week %d", e.EmployeeID, e.WeekIndex)
		seen[key] = true

		assert.Equal(t, epoch.AddDate(0, 0, 7*int(e.WeekIndex-1)), e.Date)
		assert.GreaterOrEqual(t, e.WeeklyHours, int64(36))
		assert.LessOrEqual(t, e.WeeklyHours, int64(43))
		assert.GreaterOrEqual(t, e.OvertimeHours, int64(0))
		assert.GreaterOrEqual(t, e.Absences, int64(0))

		if i%60 != 0 {
			assert.Equal(t, entries[i-1].WeeklyHours, e.WeeklyHours, "base hours are per employee")
		}
	}

	assert.Equal(t, int64(1), entries[0].WeekIndex)
	assert.Equal(t, int64(60), entries[59].WeekIndex)
	assert.Equal(t, day(2025, 2, 17), entries[59].Date)
}

func TestWorkJournal_NegativeWeeks(t *testing.T) {
	_, err := New(42, refdata.Default()).WorkJournal(nil, -1, day(2024, 1, 1))
	assert.Error(t, err)
}

func TestFinance_ThreeMonths(t *testing.T) {
	a := New(42, refdata.Default())
	sales := []domain.Sale{
		sale(day(2024, 3, 2), "Produto A", "SP", 1, 100),
		sale(day(2024, 3, 30), "Produto A", "SP", 1, 50.5),
		sale(day(2024, 4, 15), "Produto B", "RJ", 1, 200),
		sale(day(2024, 5, 31), "Produto C", "MG", 1, 300),
	}

	revenue, expenses := a.Finance(sales)
	require.Len(t, revenue, 3)
	require.Len(t, expenses, 12)

	assert.Equal(t, day(2024, 3, 1), revenue[0].Date)
	assert.InDelta(t, 150.5, revenue[0].Value, 1e-9)
	assert.Equal(t, domain.RecordTypeRevenue, revenue[0].Type)

	accounts := map[string]int{}
	for _, e := range expenses {
		accounts[e.Account]++
		assert.Equal(t, domain.RecordTypeExpense, e.Type)
	}
	assert.Equal(t, map[string]int{"Operacional": 3, "Pessoal": 3, "Logística": 3, "Marketing": 3}, accounts)

	for _, e := range expenses {
		switch e.Account {
		case "Operacional":
			assert.GreaterOrEqual(t, e.Value, 120_000.0)
			assert.Less(t, e.Value, 220_000.0)
		case "Marketing":
			assert.GreaterOrEqual(t, e.Value, 40_000.0)
			assert.Less(t, e.Value, 100_000.0)
		}
	}
}

func TestFinance_ZeroFillsGapMonths(t *testing.T) {
	a := New(42, refdata.Default())
	sales := []domain.Sale{
		sale(day(2024, 1, 10), "Produto A", "SP", 1, 100),
		sale(day(2024, 4, 10), "Produto A", "SP", 1, 100),
	}

	revenue, expenses := a.Finance(sales)
	require.Len(t, revenue, 4)
	assert.Len(t, expenses, 16)
	assert.Zero(t, revenue[1].Value)
	assert.Zero(t, revenue[2].Value)
}

func TestFinance_Empty(t *testing.T) {
	revenue, expenses := New(42, refdata.Default()).Finance(nil)
	assert.Empty(t, revenue)
	assert.Empty(t, expenses)
}

func TestOperations(t *testing.T) {
	a := New(42, refdata.Default())
	sales := generatedSales(t, 3000)

	observed := map[string]bool{}
	for _, s := range sales {
		observed[domain.MonthStart(s.Date).Format(time.DateOnly)+s.State] = true
	}

	production, logistics := a.Operations(sales)
	require.Len(t, production, len(observed))
	require.Len(t, logistics, len(observed))

	var orders int64
	for i, p := range production {
		assert.True(t, observed[p.Month.Format(time.DateOnly)+p.State], "invented key")
		assert.GreaterOrEqual(t, p.EfficiencyPct, 50.0)
		assert.LessOrEqual(t, p.EfficiencyPct, 99.5)

		l := logistics[i]
		assert.Equal(t, p.Month, l.Month)
		assert.Equal(t, p.State, l.State)
		assert.GreaterOrEqual(t, l.AvgDeliveryDays, 2.0)
		assert.LessOrEqual(t, l.AvgDeliveryDays, 8.0)
		orders += l.OrdersCount
	}
	assert.Equal(t, int64(len(sales)), orders)
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name    string
		qty     int64
		defects int64
		want    float64
	}{
		{"typical", 200, 3, 98.5},
		{"clipped high", 1000, 0, 99.5},
		{"clipped low", 10, 9, 50},
		{"zero quantity counts as one", 0, 1, 50},
		{"rounded", 300, 7, 97.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Efficiency(tt.qty, tt.defects))
		})
	}
}

func TestAggregator_Reproducible(t *testing.T) {
	sales := generatedSales(t, 500)

	p1, l1 := New(42, refdata.Default()).Operations(sales)
	p2, l2 := New(42, refdata.Default()).Operations(sales)
	assert.Equal(t, p1, p2)
	assert.Equal(t, l1, l2)
}
