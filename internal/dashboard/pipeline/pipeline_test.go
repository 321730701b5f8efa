package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/refdata"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/logger"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Employees = 40
	opts.Salespeople = 10
	opts.Sales = 500
	opts.Weeks = 4
	return opts
}

func TestGenerate_Complete(t *testing.T) {
	p := New(smallOptions(), logger.Nop())

	ds, err := p.Generate(context.Background())
	require.NoError(t, err)

	counts := ds.RowCounts()
	assert.Len(t, counts, len(domain.ArtifactNames))
	assert.Equal(t, 40, counts[domain.ArtifactEmployees])
	assert.Equal(t, 10, counts[domain.ArtifactSalespeople])
	assert.Equal(t, 500, counts[domain.ArtifactSales])
	assert.Equal(t, 160, counts[domain.ArtifactWorkJournal])
	assert.Equal(t, 4*counts[domain.ArtifactRevenue], counts[domain.ArtifactExpenses])
	assert.Equal(t, counts[domain.ArtifactProduction], counts[domain.ArtifactLogistics])
	assert.NotZero(t, counts[domain.ArtifactInventory])

	sellers := map[string]bool{}
	for _, s := range ds.Salespeople {
		sellers[s.Name] = true
	}
	for _, s := range ds.Sales {
		assert.True(t, sellers[s.Salesperson])
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := New(smallOptions(), logger.Nop()).Generate(context.Background())
	require.NoError(t, err)
	b, err := New(smallOptions(), logger.Nop()).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_InvalidCatalog(t *testing.T) {
	opts := smallOptions()
	opts.Catalog.Products = nil

	ds, err := New(opts, logger.Nop()).Generate(context.Background())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, refdata.ErrInvalidCatalog)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ds, err := New(smallOptions(), logger.Nop()).Generate(ctx)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.DatasetConfig{
		Seed:         7,
		Employees:    10,
		Salespeople:  5,
		Sales:        100,
		Weeks:        8,
		StartDate:    "2024-03-01",
		EndDate:      "2024-05-31",
		JournalEpoch: "2024-01-01",
	}

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), opts.Seed)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), opts.Start)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), opts.End)
	assert.NoError(t, opts.Catalog.Validate())

	cfg.EndDate = "2024-02-01"
	_, err = OptionsFromConfig(cfg)
	assert.Error(t, err)
}

func TestGenerate_ThreeMonthFinance(t *testing.T) {
	opts := smallOptions()
	opts.Start = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	opts.End = time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	ds, err := New(opts, logger.Nop()).Generate(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Revenue, 3)
	assert.Len(t, ds.Expenses, 12)
}
