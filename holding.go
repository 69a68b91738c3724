package club

import (
	"maps"
	"slices"
)

// Holdings maps an asset symbol to the quantity the pool currently owns.
// For every asset the quantity equals the sum of buy quantities across the
// transaction ledger; it is never mutated directly.
type Holdings map[string]Quantity

// Assets returns the symbols with a non-zero quantity, sorted.
func (h Holdings) Assets() []string {
	assets := make([]string, 0, len(h))
	for asset, qty := range h {
		if !qty.IsZero() {
			assets = append(assets, asset)
		}
	}
	slices.Sort(assets)
	return assets
}

// Equal reports whether both maps hold the same quantities, treating a
// missing asset and a zero quantity as the same thing.
func (h Holdings) Equal(o Holdings) bool {
	for asset := range maps.Keys(h) {
		if !h[asset].Equal(o[asset]) {
			return false
		}
	}
	for asset := range maps.Keys(o) {
		if !h[asset].Equal(o[asset]) {
			return false
		}
	}
	return true
}

// Value computes the market value of the holdings under a price snapshot.
// Assets absent from the snapshot contribute zero and are returned in
// unpriced, sorted, so a valuation never silently undercounts.
func (h Holdings) Value(snapshot PriceSnapshot) (total Money, unpriced []string) {
	for _, asset := range h.Assets() {
		price, ok := snapshot.Price(asset)
		if !ok {
			unpriced = append(unpriced, asset)
			continue
		}
		total = total.Add(price.Mul(h[asset]))
	}
	return total, unpriced
}
