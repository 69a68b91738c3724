package club

import (
	"maps"
	"slices"
	"time"
)

// PriceSnapshot holds the current price per unit for each supported asset in
// the reference currency. Stale is true when the oracle call failed or timed
// out and the snapshot carries the static fallback prices instead.
type PriceSnapshot struct {
	prices map[string]Money
	Stale  bool
	At     time.Time
}

// NewPriceSnapshot builds a snapshot from a symbol to price mapping.
func NewPriceSnapshot(prices map[string]Money, stale bool) PriceSnapshot {
	cp := make(map[string]Money, len(prices))
	maps.Copy(cp, prices)
	return PriceSnapshot{prices: cp, Stale: stale, At: time.Now()}
}

// Price returns the price per unit for an asset, and whether the snapshot
// knows it.
func (s PriceSnapshot) Price(asset string) (Money, bool) {
	price, ok := s.prices[asset]
	return price, ok
}

// Assets returns the priced symbols, sorted.
func (s PriceSnapshot) Assets() []string {
	assets := slices.Collect(maps.Keys(s.prices))
	slices.Sort(assets)
	return assets
}

// Len returns the number of priced assets.
func (s PriceSnapshot) Len() int { return len(s.prices) }
