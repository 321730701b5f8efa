package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/refdata"
	"github.com/painel/painel-backend/pkg/errors"
	"github.com/painel/painel-backend/pkg/logger"
)

// Regenerator rebuilds and persists the whole dataset
type Regenerator interface {
	Regenerate(ctx context.Context) (*domain.Dataset, error)
}

// SalesOverview is the commercial tab for one filter
type SalesOverview struct {
	KPIs            domain.KPIs           `json:"kpis"`
	MonthlyRevenue  []domain.MonthlyValue `json:"monthly_revenue"`
	ProfitByProduct []domain.LabeledValue `json:"profit_by_product"`
	TopSalespeople  []domain.LabeledValue `json:"top_salespeople"`
	RevenueByRegion []domain.LabeledValue `json:"revenue_by_region"`
}

// InventoryView is the stock tab
type InventoryView struct {
	StockByProduct []domain.LabeledValue `json:"stock_by_product"`
	Risk           domain.StockRisk      `json:"risk"`
}

// JournalView is the work journal tab
type JournalView struct {
	OvertimeMonthlyMean  []domain.MonthlyValue     `json:"overtime_monthly_mean"`
	AbsencesByDepartment []domain.LabeledValue     `json:"absences_by_department"`
	Entries              []domain.WorkJournalEntry `json:"entries,omitempty"`
}

// EmployeesView is the staff tab
type EmployeesView struct {
	Employees          []domain.Employee      `json:"employees"`
	SalaryHistogram    []domain.HistogramBin  `json:"salary_histogram"`
	SalaryByDepartment []domain.SalarySummary `json:"salary_by_department"`
}

// ProductionView is the production tab
type ProductionView struct {
	States []string                  `json:"states"`
	Rows   []domain.ProductionRecord `json:"rows"`
}

// LogisticsView is the logistics tab
type LogisticsView struct {
	States []string                 `json:"states"`
	Rows   []domain.LogisticsRecord `json:"rows"`
}

// DashboardService answers dashboard queries over the in-memory dataset.
// Queries never mutate the dataset; Refresh swaps it for a new one.
type DashboardService struct {
	mu          sync.RWMutex
	dataset     *domain.Dataset
	catalog     refdata.Catalog
	regenerator Regenerator
	logger      *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(ds *domain.Dataset, catalog refdata.Catalog, regenerator Regenerator, log *logger.Logger) *DashboardService {
	return &DashboardService{
		dataset:     ds,
		catalog:     catalog,
		regenerator: regenerator,
		logger:      log.WithComponent("dashboard_service"),
	}
}

// Catalog returns the reference data the filters are drawn from
func (s *DashboardService) Catalog() refdata.Catalog {
	return s.catalog
}

func (s *DashboardService) current() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// DefaultFilter selects the whole sales period and every region, product
// and category.
func (s *DashboardService) DefaultFilter() domain.FilterSpec {
	f := domain.FilterSpec{
		Regions:    s.catalog.Regions,
		Products:   s.catalog.ProductNames(),
		Categories: s.catalog.Categories,
	}
	if first, last, ok := s.current().SalesPeriod(); ok {
		f.Start, f.End = first, last
	}
	return f
}

// Sales returns the filtered fact table
func (s *DashboardService) Sales(f domain.FilterSpec) []domain.Sale {
	return FilterSales(s.current().Sales, f)
}

// KPIs returns the headline figures for a filter
func (s *DashboardService) KPIs(f domain.FilterSpec) domain.KPIs {
	return ComputeKPIs(s.Sales(f))
}

// SalesOverview builds every commercial series for a filter
func (s *DashboardService) SalesOverview(f domain.FilterSpec) SalesOverview {
	sales := s.Sales(f)
	return SalesOverview{
		KPIs:            ComputeKPIs(sales),
		MonthlyRevenue:  MonthlyRevenue(sales),
		ProfitByProduct: ProfitByProduct(sales),
		TopSalespeople:  TopSalespeople(sales, DefaultTopSalespeople),
		RevenueByRegion: RevenueByRegion(sales),
	}
}

// Inventory builds the stock view. A nil product list selects all.
func (s *DashboardService) Inventory(products []string) InventoryView {
	items := FilterInventory(s.current().Inventory, products)
	return InventoryView{
		StockByProduct: StockByProduct(items),
		Risk:           StockAtRisk(items),
	}
}

// WorkJournal builds the journal view. A nil department list selects all.
func (s *DashboardService) WorkJournal(departments []string, withEntries bool) JournalView {
	entries := FilterJournal(s.current().WorkJournal, departments)
	view := JournalView{
		OvertimeMonthlyMean:  OvertimeMonthlyMean(entries),
		AbsencesByDepartment: AbsencesByDepartment(entries),
	}
	if withEntries {
		view.Entries = entries
	}
	return view
}

// Departments lists the departments present in the staff
func (s *DashboardService) Departments() []string {
	return Departments(s.current().Employees)
}

// Employees builds the staff view. No departments means the whole staff.
func (s *DashboardService) Employees(departments []string) EmployeesView {
	employees := FilterEmployees(s.current().Employees, departments)
	return EmployeesView{
		Employees:          employees,
		SalaryHistogram:    SalaryHistogram(employees, DefaultSalaryBins),
		SalaryByDepartment: SalaryByDepartment(employees),
	}
}

// CashFlow returns the monthly cash flow inside the period
func (s *DashboardService) CashFlow(start, end time.Time) []domain.CashFlowRow {
	ds := s.current()
	return CashFlow(ds.Revenue, ds.Expenses, start, end)
}

// Indicators returns the whole-dataset financial indicators
func (s *DashboardService) Indicators() domain.FinancialIndicators {
	ds := s.current()
	return Indicators(ds.Revenue, ds.Expenses)
}

// Production builds the production view. A nil state list selects the
// first states in alphabetical order.
func (s *DashboardService) Production(states []string) ProductionView {
	rows := s.current().Production
	all := ProductionStates(rows)
	if states == nil {
		states = defaultStates(all)
	}
	return ProductionView{States: all, Rows: FilterProduction(rows, states)}
}

// Logistics builds the logistics view. A nil state list selects the
// first states in alphabetical order.
func (s *DashboardService) Logistics(states []string) LogisticsView {
	rows := s.current().Logistics
	all := LogisticsStates(rows)
	if states == nil {
		states = defaultStates(all)
	}
	return LogisticsView{States: all, Rows: FilterLogistics(rows, states)}
}

// RowCounts returns the size of every table
func (s *DashboardService) RowCounts() map[string]int {
	return s.current().RowCounts()
}

// Refresh regenerates the whole dataset and swaps it in. Queries running
// meanwhile keep reading the previous dataset.
func (s *DashboardService) Refresh(ctx context.Context) error {
	if s.regenerator == nil {
		return errors.DatasetUnavailable()
	}

	ds, err := s.regenerator.Regenerate(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to regenerate dataset")
		appErr := errors.Wrap(err, "DATASET_UNAVAILABLE", "dataset regeneration failed", http.StatusServiceUnavailable)
		appErr.MessageKey = "errors.dataset_unavailable"
		return appErr
	}

	s.mu.Lock()
	s.dataset = ds
	s.mu.Unlock()

	s.logger.Info().Int("sales", len(ds.Sales)).Msg("dataset refreshed")
	return nil
}
