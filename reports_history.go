package club

// ValuePoint is the portfolio's market value right after one purchase, at
// current snapshot prices. The series shows how the position was built, not
// historical prices.
type ValuePoint struct {
	Date  Date
	Asset string
	Value Money
}

// NewValueHistory replays the purchases in occurred order, accumulating
// holdings, and values the running position under the snapshot after each
// one. Assets the snapshot cannot price contribute zero, consistent with
// Holdings.Value.
func NewValueHistory(b *Book, snapshot PriceSnapshot) []ValuePoint {
	running := make(Holdings)
	var points []ValuePoint
	for _, rec := range b.Transactions.History(ByOccurred, Asc) {
		if rec.Kind != KindBuy {
			continue
		}
		running[rec.Asset] = running[rec.Asset].Add(rec.Quantity)
		var value Money
		for _, asset := range running.Assets() {
			if price, ok := snapshot.Price(asset); ok {
				value = value.Add(price.Mul(running[asset]))
			}
		}
		points = append(points, ValuePoint{Date: rec.Date, Asset: rec.Asset, Value: value})
	}
	return points
}
