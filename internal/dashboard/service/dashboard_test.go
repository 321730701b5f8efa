package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/refdata"
	apperrors "github.com/painel/painel-backend/pkg/errors"
	"github.com/painel/painel-backend/pkg/logger"
	"github.com/painel/painel-backend/pkg/testutil"
)

type stubRegenerator struct {
	ds  *domain.Dataset
	err error
}

func (r *stubRegenerator) Regenerate(context.Context) (*domain.Dataset, error) {
	return r.ds, r.err
}

func newService(regen Regenerator) *DashboardService {
	return NewDashboardService(testutil.Dataset(), refdata.Default(), regen, logger.Nop())
}

func TestDashboardService_DefaultFilterSelectsEverything(t *testing.T) {
	svc := newService(nil)

	f := svc.DefaultFilter()
	assert.Equal(t, testutil.Day(2024, 1, 10), f.Start)
	assert.Equal(t, testutil.Day(2024, 2, 18), f.End)
	assert.Len(t, f.Regions, 5)
	assert.Len(t, f.Products, 5)
	assert.Len(t, f.Categories, 3)

	assert.Len(t, svc.Sales(f), 18)
	assert.Equal(t, 18, svc.KPIs(f).Orders)
}

func TestDashboardService_SalesOverview(t *testing.T) {
	svc := newService(nil)
	f := svc.DefaultFilter()
	f.Regions = []string{"Sul"}

	overview := svc.SalesOverview(f)
	assert.Equal(t, 6, overview.KPIs.Orders)
	assert.InDelta(t, 1840, overview.KPIs.Revenue, 1e-9)
	assert.Len(t, overview.MonthlyRevenue, 2)
	assert.Len(t, overview.ProfitByProduct, 3)
	assert.Equal(t, []string{"Sul"}, labels(overview.RevenueByRegion))

	f.Regions = []string{}
	empty := svc.SalesOverview(f)
	assert.Equal(t, domain.KPIs{}, empty.KPIs)
	assert.Empty(t, empty.MonthlyRevenue)
	assert.Empty(t, empty.TopSalespeople)
}

func TestDashboardService_Views(t *testing.T) {
	svc := newService(nil)

	inv := svc.Inventory(nil)
	assert.NotEmpty(t, inv.StockByProduct)

	journal := svc.WorkJournal([]string{"TI"}, true)
	assert.Len(t, journal.Entries, 8)
	assert.Equal(t, []string{"TI"}, labels(journal.AbsencesByDepartment))
	assert.Nil(t, svc.WorkJournal(nil, false).Entries)

	assert.Equal(t, []string{"Comercial", "Logística", "TI"}, svc.Departments())
	assert.Len(t, svc.Employees(nil).Employees, 4)

	flow := svc.CashFlow(testutil.Day(2024, 1, 1), testutil.Day(2024, 12, 1))
	assert.Len(t, flow, 2)
	assert.Greater(t, svc.Indicators().TotalExpense, 0.0)

	prod := svc.Production(nil)
	assert.Equal(t, []string{"BA", "PR", "SP"}, prod.States)
	assert.Len(t, prod.Rows, 6)
	assert.Len(t, svc.Logistics([]string{"SP"}).Rows, 2)

	assert.Equal(t, 18, svc.RowCounts()[domain.ArtifactSales])
}

func TestDashboardService_Refresh(t *testing.T) {
	t.Run("swaps the dataset", func(t *testing.T) {
		fresh := &domain.Dataset{Sales: testutil.GridSales()[:3]}
		svc := newService(&stubRegenerator{ds: fresh})

		require.NoError(t, svc.Refresh(context.Background()))
		assert.Equal(t, 3, svc.RowCounts()[domain.ArtifactSales])
	})

	t.Run("keeps the old dataset on failure", func(t *testing.T) {
		svc := newService(&stubRegenerator{err: errors.New("disk full")})

		err := svc.Refresh(context.Background())
		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, http.StatusServiceUnavailable, appErr.StatusCode)
		assert.Equal(t, 18, svc.RowCounts()[domain.ArtifactSales])
	})

	t.Run("without a regenerator", func(t *testing.T) {
		err := newService(nil).Refresh(context.Background())
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})
}
