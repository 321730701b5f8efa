// Package pipeline runs the generators and aggregators in a fixed order
// and returns a complete dataset or an error, never a partial dataset.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/aggregator"
	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/generator"
	"github.com/painel/painel-backend/internal/dashboard/refdata"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/logger"
)

// Options are the parameters of one dataset generation
type Options struct {
	Seed        uint64
	Employees   int
	Salespeople int
	Sales       int
	Weeks       int
	Start       time.Time
	End         time.Time
	Epoch       time.Time
	Catalog     refdata.Catalog
}

// DefaultOptions returns the defaults: 300 employees, 50 salespeople,
// 15000 sales from 2024-01-01 to 2025-10-01 and a 60 week journal.
func DefaultOptions() Options {
	return Options{
		Seed:        42,
		Employees:   300,
		Salespeople: 50,
		Sales:       15000,
		Weeks:       60,
		Start:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Epoch:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Catalog:     refdata.Default(),
	}
}

// OptionsFromConfig builds options from the dataset config section with the
// default catalog.
func OptionsFromConfig(cfg *config.DatasetConfig) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	start, end, err := cfg.Period()
	if err != nil {
		return Options{}, err
	}
	epoch, err := cfg.Epoch()
	if err != nil {
		return Options{}, err
	}

	return Options{
		Seed:        cfg.Seed,
		Employees:   cfg.Employees,
		Salespeople: cfg.Salespeople,
		Sales:       cfg.Sales,
		Weeks:       cfg.Weeks,
		Start:       start,
		End:         end,
		Epoch:       epoch,
		Catalog:     refdata.Default(),
	}, nil
}

// Pipeline generates datasets
type Pipeline struct {
	opts   Options
	logger *logger.Logger
}

// New creates a pipeline
func New(opts Options, log *logger.Logger) *Pipeline {
	return &Pipeline{
		opts:   opts,
		logger: log.WithComponent("pipeline"),
	}
}

// Options returns the pipeline's generation parameters
func (p *Pipeline) Options() Options {
	return p.opts
}

// Generate builds all nine tables. Base tables come first (employees,
// salespeople, sales), then inventory, work journal, finance and operations.
func (p *Pipeline) Generate(ctx context.Context) (*domain.Dataset, error) {
	started := time.Now()

	gen, err := generator.New(p.opts.Seed, p.opts.Catalog)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	agg := aggregator.New(p.opts.Seed, p.opts.Catalog)

	var ds domain.Dataset

	steps := []struct {
		name string
		fn   func() error
	}{
		{domain.ArtifactEmployees, func() (err error) {
			ds.Employees, err = gen.GenerateEmployees(p.opts.Employees)
			return err
		}},
		{domain.ArtifactSalespeople, func() (err error) {
			ds.Salespeople, err = gen.GenerateSalespeople(ds.Employees, p.opts.Salespeople)
			return err
		}},
		{domain.ArtifactSales, func() (err error) {
			ds.Sales, err = gen.GenerateSales(p.opts.Sales, p.opts.Start, p.opts.End, ds.Salespeople)
			return err
		}},
		{domain.ArtifactInventory, func() error {
			ds.Inventory = agg.Inventory(ds.Sales)
			return nil
		}},
		{domain.ArtifactWorkJournal, func() (err error) {
			ds.WorkJournal, err = agg.WorkJournal(ds.Employees, p.opts.Weeks, p.opts.Epoch)
			return err
		}},
		{"finance", func() error {
			ds.Revenue, ds.Expenses = agg.Finance(ds.Sales)
			return nil
		}},
		{"operations", func() error {
			ds.Production, ds.Logistics = agg.Operations(ds.Sales)
			return nil
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate %s: %w", step.name, err)
		}
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("generate %s: %w", step.name, err)
		}
	}

	p.logger.Info().
		Uint64("seed", p.opts.Seed).
		Int("sales", len(ds.Sales)).
		Dur("duration", time.Since(started)).
		Msg("dataset generated")

	return &ds, nil
}
