package repository

import (
	"bytes"
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/painel/painel-backend/internal/dashboard/domain"
)

// encodeRows writes rows as a parquet file.
func encodeRows[T any](rows []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := parquet.Write(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeRows reads a parquet file into rows of T after checking its schema
// against T. The result is never nil.
func decodeRows[T any](data []byte) ([]T, error) {
	r := bytes.NewReader(data)
	size := int64(len(data))

	file, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	if err := checkSchema(parquet.SchemaOf(new(T)), file.Schema()); err != nil {
		return nil, err
	}

	rows, err := parquet.Read[T](r, size)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// checkSchema compares column names and physical types. Any drift fails.
func checkSchema(want, got *parquet.Schema) error {
	wantFields, gotFields := want.Fields(), got.Fields()
	if len(wantFields) != len(gotFields) {
		return fmt.Errorf("%w: expected %d columns, found %d", ErrSchemaMismatch, len(wantFields), len(gotFields))
	}

	found := make(map[string]parquet.Field, len(gotFields))
	for _, f := range gotFields {
		found[f.Name()] = f
	}

	for _, w := range wantFields {
		g, ok := found[w.Name()]
		if !ok {
			return fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, w.Name())
		}
		if w.Type().Kind() != g.Type().Kind() || w.Type().String() != g.Type().String() {
			return fmt.Errorf("%w: column %q is %s, expected %s",
				ErrSchemaMismatch, w.Name(), g.Type(), w.Type())
		}
	}

	return nil
}

// encodeDataset encodes every table of ds, in artifact order.
func encodeDataset(ds *domain.Dataset) ([]Artifact, error) {
	encoders := []struct {
		name   string
		encode func() ([]byte, error)
	}{
		{domain.ArtifactEmployees, func() ([]byte, error) { return encodeRows(ds.Employees) }},
		{domain.ArtifactSalespeople, func() ([]byte, error) { return encodeRows(ds.Salespeople) }},
		{domain.ArtifactSales, func() ([]byte, error) { return encodeRows(ds.Sales) }},
		{domain.ArtifactInventory, func() ([]byte, error) { return encodeRows(ds.Inventory) }},
		{domain.ArtifactWorkJournal, func() ([]byte, error) { return encodeRows(ds.WorkJournal) }},
		{domain.ArtifactRevenue, func() ([]byte, error) { return encodeRows(ds.Revenue) }},
		{domain.ArtifactExpenses, func() ([]byte, error) { return encodeRows(ds.Expenses) }},
		{domain.ArtifactProduction, func() ([]byte, error) { return encodeRows(ds.Production) }},
		{domain.ArtifactLogistics, func() ([]byte, error) { return encodeRows(ds.Logistics) }},
	}

	artifacts := make([]Artifact, 0, len(encoders))
	for _, e := range encoders {
		data, err := e.encode()
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.name, err)
		}
		artifacts = append(artifacts, Artifact{Name: e.name, Data: data})
	}
	return artifacts, nil
}

// decodeArtifact decodes the artifact called name into its table of ds.
// Date columns come back in UTC.
func decodeArtifact(ds *domain.Dataset, name string, data []byte) error {
	var err error

	switch name {
	case domain.ArtifactEmployees:
		ds.Employees, err = decodeRows[domain.Employee](data)
	case domain.ArtifactSalespeople:
		ds.Salespeople, err = decodeRows[domain.Salesperson](data)
	case domain.ArtifactSales:
		ds.Sales, err = decodeRows[domain.Sale](data)
		for i := range ds.Sales {
			ds.Sales[i].Date = ds.Sales[i].Date.UTC()
		}
	case domain.ArtifactInventory:
		ds.Inventory, err = decodeRows[domain.InventorySnapshot](data)
	case domain.ArtifactWorkJournal:
		ds.WorkJournal, err = decodeRows[domain.WorkJournalEntry](data)
		for i := range ds.WorkJournal {
			ds.WorkJournal[i].Date = ds.WorkJournal[i].Date.UTC()
		}
	case domain.ArtifactRevenue:
		ds.Revenue, err = decodeRows[domain.RevenueRecord](data)
		for i := range ds.Revenue {
			ds.Revenue[i].Date = ds.Revenue[i].Date.UTC()
		}
	case domain.ArtifactExpenses:
		ds.Expenses, err = decodeRows[domain.ExpenseRecord](data)
		for i := range ds.Expenses {
			ds.Expenses[i].Date = ds.Expenses[i].Date.UTC()
		}
	case domain.ArtifactProduction:
		ds.Production, err = decodeRows[domain.ProductionRecord](data)
		for i := range ds.Production {
			ds.Production[i].Month = ds.Production[i].Month.UTC()
		}
	case domain.ArtifactLogistics:
		ds.Logistics, err = decodeRows[domain.LogisticsRecord](data)
		for i := range ds.Logistics {
			ds.Logistics[i].Month = ds.Logistics[i].Month.UTC()
		}
	default:
		return fmt.Errorf("unknown artifact %q", name)
	}

	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
