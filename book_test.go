package club

import "testing"

// The whole accounting chain must work in whatever currency the amounts
// carry; nothing may assume the default.
func TestBookNonDefaultCurrency(t *testing.T) {
	b := newTestBook(t)

	if _, err := b.RecordContribution("Charles", M(100.0, "USD"), MustParseDate("2025-06-02")); err != nil {
		t.Fatalf("RecordContribution() error = %v", err)
	}

	pool := b.Contributions.TotalPool()
	if !pool.Equal(M(100.0, "USD")) || pool.Currency() != "USD" {
		t.Errorf("TotalPool() = %s (%s), want $100.00 (USD)", pool, pool.Currency())
	}
	if pct := b.Contributions.OwnershipPercentage("Charles"); !pct.Equal(100) {
		t.Errorf("OwnershipPercentage(Charles) = %s, want 100.00%%", pct)
	}

	if _, err := b.RecordPurchase("BTC", Q(0.001), M(50000.0, "USD"), M(5.0, "USD"), MustParseDate("2025-06-03"), ""); err != nil {
		t.Fatalf("RecordPurchase() error = %v", err)
	}
	balance := b.AvailableBalance()
	if !balance.Equal(M(45.0, "USD")) || balance.Currency() != "USD" {
		t.Errorf("AvailableBalance() = %s (%s), want $45.00 (USD)", balance, balance.Currency())
	}

	snapshot := NewPriceSnapshot(map[string]Money{"BTC": M(60000.0, "USD")}, false)
	value, unpriced := b.PortfolioValue(snapshot)
	if !value.Equal(M(60.0, "USD")) || len(unpriced) != 0 {
		t.Errorf("PortfolioValue() = %s, unpriced %v, want $60.00 and none", value, unpriced)
	}

	report := NewEquityReport(b, snapshot)
	if got := report.Members[0].EquityValue; !got.Equal(M(60.0, "USD")) || got.Currency() != "USD" {
		t.Errorf("EquityValue for Charles = %s (%s), want $60.00 (USD)", got, got.Currency())
	}
}
