package club

import (
	"slices"
	"testing"
)

func TestHoldingsValue(t *testing.T) {
	h := Holdings{
		"BTC":  Q(0.5),
		"ETH":  Q(2),
		"DOGE": Q(1000), // not in the snapshot
		"XRP":  Q(0),    // zero position, ignored entirely
	}
	s := snap(map[string]float64{"BTC": 100000, "ETH": 5000})

	total, unpriced := h.Value(s)
	if !total.Equal(AUD(60000)) {
		t.Errorf("Value() = %s, want $60,000.00", total)
	}
	if !slices.Equal(unpriced, []string{"DOGE"}) {
		t.Errorf("unpriced = %v, want [DOGE]: valuation must flag what it skipped", unpriced)
	}
}

func TestHoldingsValue_Empty(t *testing.T) {
	total, unpriced := Holdings{}.Value(snap(map[string]float64{"BTC": 100000}))
	if !total.IsZero() || len(unpriced) != 0 {
		t.Errorf("Value() = %s, %v, want zero and no flags", total, unpriced)
	}
}

func TestHoldingsEqual(t *testing.T) {
	a := Holdings{"BTC": Q(1), "ETH": Q(0)}
	b := Holdings{"BTC": Q(1)}
	if !a.Equal(b) {
		t.Error("zero quantity and missing asset should compare equal")
	}
	c := Holdings{"BTC": Q(2)}
	if a.Equal(c) {
		t.Error("different quantities should not compare equal")
	}
}

func TestPortfolioValue_CopyIsolation(t *testing.T) {
	b := newTestBook(t)
	mustContribute(t, b, "Charles", 1000, "2025-06-02")
	mustBuy(t, b, "BTC", 0.001, 100000, 0, "2025-06-03")

	h := b.Transactions.Holdings()
	h["BTC"] = Q(999)
	if got := b.Transactions.Holdings()["BTC"]; !got.Equal(Q(0.001)) {
		t.Errorf("Holdings() must return a copy, ledger now holds %s", got)
	}
}
