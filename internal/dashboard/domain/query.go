package domain

import "time"

// FilterSpec is a conjunctive predicate over the fact table. Each set is a
// disjunction over its members; an empty set matches nothing. Zero Start or
// End leaves that side of the period open; End includes its whole day.
type FilterSpec struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Regions    []string  `json:"regions"`
	Products   []string  `json:"products"`
	Categories []string  `json:"categories"`
}

// KPIs are the headline figures of a filtered sales set
type KPIs struct {
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	Orders        int     `json:"orders"`
	AverageTicket float64 `json:"average_ticket"`
}

// LabeledValue is one bar or slice of a categorical chart
type LabeledValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// MonthlyValue is one point of a monthly series
type MonthlyValue struct {
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

// StockRisk lists inventory rows below their reorder point
type StockRisk struct {
	Items     []InventorySnapshot `json:"items"`
	AtRiskPct float64             `json:"at_risk_pct"`
}

// CashFlowRow is revenue against expenses for one month
type CashFlowRow struct {
	Month             time.Time `json:"month"`
	Revenue           float64   `json:"revenue"`
	Expense           float64   `json:"expense"`
	Balance           float64   `json:"balance"`
	CumulativeBalance float64   `json:"cumulative_balance"`
}

// FinancialIndicators are the whole-dataset finance totals
type FinancialIndicators struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalExpense float64 `json:"total_expense"`
	NetMargin    float64 `json:"net_margin"`
}

// HistogramBin is one bucket of a value distribution; Upper is exclusive
// except for the last bin.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// SalarySummary is the five-number summary of a department's salaries
type SalarySummary struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	Min        float64 `json:"min"`
	Q1         float64 `json:"q1"`
	Median     float64 `json:"median"`
	Q3         float64 `json:"q3"`
	Max        float64 `json:"max"`
}
