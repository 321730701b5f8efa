package aggregator

import (
	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/sampling"
)

// Finance builds monthly revenue from sales and one expense row per cost
// center per revenue month. Months between the first and the last sale are
// all present; months without sales carry zero revenue.
func (a *Aggregator) Finance(sales []domain.Sale) ([]domain.RevenueRecord, []domain.ExpenseRecord) {
	revenue := make([]domain.RevenueRecord, 0)
	expenses := make([]domain.ExpenseRecord, 0)
	if len(sales) == 0 {
		return revenue, expenses
	}

	byMonth := make(map[int64]float64)
	first, last := domain.MonthStart(sales[0].Date), domain.MonthStart(sales[0].Date)
	for _, s := range sales {
		m := domain.MonthStart(s.Date)
		byMonth[m.Unix()] += s.TotalValue
		if m.Before(first) {
			first = m
		}
		if m.After(last) {
			last = m
		}
	}

	src := sampling.New(a.seed, sampling.StreamFinance)
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		revenue = append(revenue, domain.RevenueRecord{
			Date:  m,
			Value: byMonth[m.Unix()],
			Type:  domain.RecordTypeRevenue,
		})
		for _, cc := range a.catalog.CostCenters {
			expenses = append(expenses, domain.ExpenseRecord{
				Date:    m,
				Account: cc.Account,
				Value:   src.Uniform(cc.Min, cc.Max),
				Type:    domain.RecordTypeExpense,
			})
		}
	}

	return revenue, expenses
}
