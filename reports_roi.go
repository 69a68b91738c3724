package club

import (
	"github.com/shopspring/decimal"
)

// AssetROI is the return on investment of a single asset, computed over its
// buy transactions only.
type AssetROI struct {
	Asset        string
	Invested     Money // sum of total costs
	CurrentValue Money // amount held times snapshot price
	ROI          Percent
	AmountHeld   Quantity
}

// ROIReport holds the per-asset returns plus the pool-level gain/loss
// figures shown on the dashboard.
type ROIReport struct {
	Assets []AssetROI // sorted by symbol; zero-invested assets are omitted

	TotalInvested  Money // all contributions ever made
	PortfolioValue Money
	GainLoss       Money
	GainLossPct    Percent  // 0 when nothing was invested
	Stale          bool     // snapshot used fallback prices
	Unpriced       []string // held assets the snapshot could not price
}

// NewROIReport computes per-asset ROI and the pool-level gain/loss. An asset
// with zero invested has an undefined ROI and is omitted, not reported as
// 0%. An asset the snapshot cannot price is valued at zero and flagged.
func NewROIReport(b *Book, snapshot PriceSnapshot) *ROIReport {
	value, unpriced := b.PortfolioValue(snapshot)
	invested := b.Contributions.TotalPool()
	gain := value.Sub(invested)

	report := &ROIReport{
		TotalInvested:  invested,
		PortfolioValue: value,
		GainLoss:       gain,
		Stale:          snapshot.Stale,
		Unpriced:       unpriced,
	}
	if !invested.IsZero() {
		report.GainLossPct = ratioPercent(gain.Decimal(), invested.Decimal())
	}

	for _, asset := range b.Transactions.Holdings().Assets() {
		var spent Money
		held := Q(0)
		for _, rec := range b.Transactions.AssetBuys(asset) {
			spent = spent.Add(rec.Cost)
			held = held.Add(rec.Quantity)
		}
		if spent.IsZero() {
			continue // undefined ROI, omitted
		}
		var current Money
		if price, ok := snapshot.Price(asset); ok {
			current = price.Mul(held)
		}
		report.Assets = append(report.Assets, AssetROI{
			Asset:        asset,
			Invested:     spent,
			CurrentValue: current,
			ROI:          ratioPercent(current.Sub(spent).Decimal(), spent.Decimal()),
			AmountHeld:   held,
		})
	}
	return report
}

// ratioPercent converts an exact num/den ratio into a display percentage.
func ratioPercent(num, den decimal.Decimal) Percent {
	return Percent(num.Div(den).Mul(decimal.NewFromInt(100)).InexactFloat64())
}
