// Package domain holds the row types of the dashboard's nine tables and the
// query-side value types built from them. Struct tags double as the
// persisted column names.
package domain

import "time"

// Employee is a generated collaborator record
type Employee struct {
	ID           int64   `parquet:"id" json:"id"`
	Name         string  `parquet:"name" json:"name"`
	Department   string  `parquet:"department" json:"department"`
	Role         string  `parquet:"role" json:"role"`
	Salary       float64 `parquet:"salary" json:"salary"`
	Age          int64   `parquet:"age" json:"age"`
	TenureMonths int64   `parquet:"tenure_months" json:"tenure_months"`
	Region       string  `parquet:"region" json:"region"`
	State        string  `parquet:"state" json:"state"`
}

// Salesperson is a name usable as the seller of a sale
type Salesperson struct {
	Name string `parquet:"name" json:"name"`
}

// Sale is a row of the fact table
type Sale struct {
	Date        time.Time `parquet:"date" json:"date"`
	Year        int64     `parquet:"year" json:"year"`
	Month       int64     `parquet:"month" json:"month"`
	Region      string    `parquet:"region" json:"region"`
	State       string    `parquet:"state" json:"state"`
	Product     string    `parquet:"product" json:"product"`
	Category    string    `parquet:"category" json:"category"`
	Quantity    int64     `parquet:"quantity" json:"quantity"`
	UnitPrice   float64   `parquet:"unit_price" json:"unit_price"`
	Discount    float64   `parquet:"discount" json:"discount"`
	TotalValue  float64   `parquet:"total_value" json:"total_value"`
	MarginPct   float64   `parquet:"margin_pct" json:"margin_pct"`
	Profit      float64   `parquet:"profit" json:"profit"`
	Salesperson string    `parquet:"salesperson" json:"salesperson"`
	Customer    string    `parquet:"customer" json:"customer"`
}

// InventorySnapshot is the stock position of a product in a state
type InventorySnapshot struct {
	Product         string  `parquet:"product" json:"product"`
	State           string  `parquet:"state" json:"state"`
	CurrentStock    int64   `parquet:"current_stock" json:"current_stock"`
	ReorderPoint    int64   `parquet:"reorder_point" json:"reorder_point"`
	MonthlyTurnover float64 `parquet:"monthly_turnover" json:"monthly_turnover"`
}

// AtRisk reports whether the stock fell below the reorder point.
func (i InventorySnapshot) AtRisk() bool {
	return i.CurrentStock < i.ReorderPoint
}

// WorkJournalEntry is one employee's hours for one week
type WorkJournalEntry struct {
	EmployeeID    int64     `parquet:"employee_id" json:"employee_id"`
	Name          string    `parquet:"name" json:"name"`
	Department    string    `parquet:"department" json:"department"`
	WeekIndex     int64     `parquet:"week_index" json:"week_index"`
	Date          time.Time `parquet:"date" json:"date"`
	WeeklyHours   int64     `parquet:"weekly_hours" json:"weekly_hours"`
	OvertimeHours int64     `parquet:"overtime_hours" json:"overtime_hours"`
	Absences      int64     `parquet:"absences" json:"absences"`
}

// Record types for the finance tables
const (
	RecordTypeRevenue = "Receita"
	RecordTypeExpense = "Despesa"
)

// RevenueRecord is the sales revenue of a calendar month
type RevenueRecord struct {
	Date  time.Time `parquet:"date" json:"date"`
	Value float64   `parquet:"value" json:"value"`
	Type  string    `parquet:"type" json:"type"`
}

// ExpenseRecord is the cost of one cost center in a calendar month
type ExpenseRecord struct {
	Date    time.Time `parquet:"date" json:"date"`
	Account string    `parquet:"account" json:"account"`
	Value   float64   `parquet:"value" json:"value"`
	Type    string    `parquet:"type" json:"type"`
}

// ProductionRecord is the monthly production of a state
type ProductionRecord struct {
	Month         time.Time `parquet:"month" json:"month"`
	State         string    `parquet:"state" json:"state"`
	QtyProduced   int64     `parquet:"qty_produced" json:"qty_produced"`
	Defects       int64     `parquet:"defects" json:"defects"`
	EfficiencyPct float64   `parquet:"efficiency_pct" json:"efficiency_pct"`
}

// LogisticsRecord is the monthly delivery activity of a state
type LogisticsRecord struct {
	Month           time.Time `parquet:"month" json:"month"`
	State           string    `parquet:"state" json:"state"`
	OrdersCount     int64     `parquet:"orders_count" json:"orders_count"`
	FreightCost     float64   `parquet:"freight_cost" json:"freight_cost"`
	AvgDeliveryDays float64   `parquet:"avg_delivery_days" json:"avg_delivery_days"`
}
