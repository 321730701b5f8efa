package domain

import (
	"math"
	"time"
)

// Artifact names. One persisted table per name.
const (
	ArtifactEmployees   = "employees"
	ArtifactSalespeople = "salespeople"
	ArtifactSales       = "sales"
	ArtifactInventory   = "inventory"
	ArtifactWorkJournal = "work_journal"
	ArtifactRevenue     = "revenue"
	ArtifactExpenses    = "expenses"
	ArtifactProduction  = "production"
	ArtifactLogistics   = "logistics"
)

// ArtifactNames lists every artifact of a complete dataset, in generation order.
var ArtifactNames = []string{
	ArtifactEmployees,
	ArtifactSalespeople,
	ArtifactSales,
	ArtifactInventory,
	ArtifactWorkJournal,
	ArtifactRevenue,
	ArtifactExpenses,
	ArtifactProduction,
	ArtifactLogistics,
}

// Dataset is a complete, immutable set of the nine tables
type Dataset struct {
	Employees   []Employee
	Salespeople []Salesperson
	Sales       []Sale
	Inventory   []InventorySnapshot
	WorkJournal []WorkJournalEntry
	Revenue     []RevenueRecord
	Expenses    []ExpenseRecord
	Production  []ProductionRecord
	Logistics   []LogisticsRecord
}

// RowCounts returns the number of rows per artifact name.
func (d *Dataset) RowCounts() map[string]int {
	return map[string]int{
		ArtifactEmployees:   len(d.Employees),
		ArtifactSalespeople: len(d.Salespeople),
		ArtifactSales:       len(d.Sales),
		ArtifactInventory:   len(d.Inventory),
		ArtifactWorkJournal: len(d.WorkJournal),
		ArtifactRevenue:     len(d.Revenue),
		ArtifactExpenses:    len(d.Expenses),
		ArtifactProduction:  len(d.Production),
		ArtifactLogistics:   len(d.Logistics),
	}
}

// SalesPeriod returns the first and last sale dates. ok is false for an empty fact table.
func (d *Dataset) SalesPeriod() (first, last time.Time, ok bool) {
	if len(d.Sales) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return d.Sales[0].Date, d.Sales[len(d.Sales)-1].Date, true
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MonthStart truncates t to the first day of its month (UTC).
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
