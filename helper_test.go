package club

import "testing"

// test members, in registry order
var testMembers = []string{"Charles", "Ross", "Jayden", "Brad"}

func newTestBook(t *testing.T) *Book {
	t.Helper()
	members, err := NewMemberRegistry(testMembers...)
	if err != nil {
		t.Fatalf("NewMemberRegistry() error = %v", err)
	}
	return NewBook(members)
}

func mustContribute(t *testing.T, b *Book, member string, amount float64, on string) {
	t.Helper()
	if _, err := b.RecordContribution(member, AUD(amount), MustParseDate(on)); err != nil {
		t.Fatalf("RecordContribution(%s, %v, %s) error = %v", member, amount, on, err)
	}
}

func mustBuy(t *testing.T, b *Book, asset string, qty, price, fee float64, on string) TransactionRecord {
	t.Helper()
	rec, err := b.RecordPurchase(asset, Q(qty), AUD(price), AUD(fee), MustParseDate(on), "")
	if err != nil {
		t.Fatalf("RecordPurchase(%s, %v, %v, %v) error = %v", asset, qty, price, fee, err)
	}
	return rec
}

// snap builds a fresh (non stale) price snapshot from float prices.
func snap(prices map[string]float64) PriceSnapshot {
	m := make(map[string]Money, len(prices))
	for asset, price := range prices {
		m[asset] = AUD(price)
	}
	return NewPriceSnapshot(m, false)
}
