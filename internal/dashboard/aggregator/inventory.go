package aggregator

import (
	"cmp"
	"slices"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/sampling"
)

const minReorderPoint = 20

type productState struct {
	product string
	state   string
}

// Inventory builds one stock snapshot per (product, state) seen in sales,
// sorted by product then state.
func (a *Aggregator) Inventory(sales []domain.Sale) []domain.InventorySnapshot {
	sold := make(map[productState]int64)
	for _, s := range sales {
		sold[productState{s.Product, s.State}] += s.Quantity
	}

	keys := make([]productState, 0, len(sold))
	for k := range sold {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y productState) int {
		return cmp.Or(cmp.Compare(x.product, y.product), cmp.Compare(x.state, y.state))
	})

	src := sampling.New(a.seed, sampling.StreamInventory)
	snapshots := make([]domain.InventorySnapshot, 0, len(keys))

	for _, k := range keys {
		qty := float64(sold[k])
		snapshots = append(snapshots, domain.InventorySnapshot{
			Product:         k.product,
			State:           k.state,
			CurrentStock:    int64(qty * src.Uniform(0.5, 2.0)),
			ReorderPoint:    max(minReorderPoint, int64(qty*0.3)),
			MonthlyTurnover: domain.Round2(src.Uniform(0.5, 4.0)),
		})
	}

	return snapshots
}
