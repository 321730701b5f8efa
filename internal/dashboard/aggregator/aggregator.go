// Package aggregator derives the secondary tables from the base tables.
// Aggregation never invents keys: every group comes from a combination
// observed in its input.
package aggregator

import (
	"github.com/painel/painel-backend/internal/dashboard/refdata"
)

// Aggregator derives tables from generated base tables. Each derivation
// draws from its own seeded stream, so its output doesn't depend on which
// other derivations ran before it.
type Aggregator struct {
	seed    uint64
	catalog refdata.Catalog
}

// New creates an aggregator for seed over catalog.
func New(seed uint64, catalog refdata.Catalog) *Aggregator {
	return &Aggregator{seed: seed, catalog: catalog}
}
