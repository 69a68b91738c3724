package club

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{-205, "-$205.00"},
		{0.005, "$0.01"}, // rounded to the currency fraction for display
	}
	for _, tc := range testCases {
		if got := AUD(tc.value).String(); got != tc.want {
			t.Errorf("AUD(%v).String() = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := AUD(50).SignedString(); got != "+$50.00" {
		t.Errorf("SignedString() = %q, want +$50.00", got)
	}
	if got := AUD(-50).SignedString(); got != "-$50.00" {
		t.Errorf("SignedString() = %q, want -$50.00", got)
	}
	if got := AUD(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3, no float drift
	sum := AUD(0.1).Add(AUD(0.2))
	if !sum.Equal(AUD(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", sum.Decimal())
	}

	// quantity times price keeps full precision
	cost := AUD(97500).Mul(Q(0.00123))
	if got := cost.Decimal().String(); got != "119.925" {
		t.Errorf("97500 * 0.00123 = %s, want 119.925", got)
	}
}

func TestMoneyComparisons(t *testing.T) {
	a, b := AUD(100), AUD(200)
	if !a.LessThan(b) || b.LessThan(a) {
		t.Error("LessThan is wrong")
	}
	if !b.GreaterThan(a) || a.GreaterThan(b) {
		t.Error("GreaterThan is wrong")
	}
	if !a.LessThanOrEqual(AUD(100)) || !a.GreaterThanOrEqual(AUD(100)) {
		t.Error("OrEqual comparisons reject equal amounts")
	}
}

func TestMoneyZeroValueAdoptsCurrency(t *testing.T) {
	var total Money
	total = total.Add(M(100.0, "USD"))
	if total.Currency() != "USD" {
		t.Errorf("Currency() after seeding a sum = %q, want USD", total.Currency())
	}
	if !total.Equal(M(100.0, "USD")) {
		t.Errorf("total = %s, want $100.00", total)
	}

	// the empty currency is weak in Equal too
	if !(Money{}).Equal(AUD(0)) {
		t.Error("currency-less zero should equal zero in any currency")
	}
	if AUD(100).Equal(M(100.0, "USD")) {
		t.Error("amounts in different currencies must not be equal")
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(33.333333).Equal(Percent(33.3333334)) {
		t.Error("Equal rejects values within tolerance")
	}
	if Percent(33.33).Equal(Percent(33.34)) {
		t.Error("Equal accepts visibly different values")
	}
}
