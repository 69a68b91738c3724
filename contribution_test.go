package club

import (
	"errors"
	"math"
	"testing"
)

func TestRecordContribution_Validation(t *testing.T) {
	b := newTestBook(t)

	testCases := []struct {
		name   string
		member string
		amount float64
	}{
		{name: "unknown member", member: "Mallory", amount: 75},
		{name: "zero amount", member: "Charles", amount: 0},
		{name: "negative amount", member: "Charles", amount: -10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.RecordContribution(tc.member, AUD(tc.amount), Date{})
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("RecordContribution() error = %v, want ValidationError", err)
			}
		})
	}
	if got := b.Contributions.TotalPool(); !got.IsZero() {
		t.Errorf("rejected contributions must not change the pool, got %s", got)
	}
}

func TestRecordContribution_DefaultsToToday(t *testing.T) {
	b := newTestBook(t)
	rec, err := b.RecordContribution("Charles", AUD(75), Date{})
	if err != nil {
		t.Fatalf("RecordContribution() error = %v", err)
	}
	if rec.Date != Today() {
		t.Errorf("Date = %s, want today %s", rec.Date, Today())
	}
	if rec.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("record should get a fresh id")
	}
}

func TestOwnershipPercentage(t *testing.T) {
	b := newTestBook(t)
	mustContribute(t, b, "Charles", 100, "2025-06-02")
	mustContribute(t, b, "Ross", 300, "2025-06-02")

	if got := b.Contributions.TotalPool(); !got.Equal(AUD(400)) {
		t.Fatalf("TotalPool() = %s, want $400.00", got)
	}

	testCases := []struct {
		member string
		want   Percent
	}{
		{"Charles", 25},
		{"Ross", 75},
		{"Jayden", 0},
		{"Brad", 0},
	}
	for _, tc := range testCases {
		if got := b.Contributions.OwnershipPercentage(tc.member); !got.Equal(tc.want) {
			t.Errorf("OwnershipPercentage(%s) = %s, want %s", tc.member, got, tc.want)
		}
	}
}

func TestOwnershipPercentage_EmptyPool(t *testing.T) {
	b := newTestBook(t)
	for _, member := range testMembers {
		got := b.Contributions.OwnershipPercentage(member)
		if got != 0 {
			t.Errorf("OwnershipPercentage(%s) = %v on empty pool, want 0", member, got)
		}
		if math.IsNaN(float64(got)) {
			t.Errorf("OwnershipPercentage(%s) is NaN", member)
		}
	}
}

func TestOwnershipPercentage_SumsToHundred(t *testing.T) {
	b := newTestBook(t)
	// uneven amounts that do not divide cleanly
	mustContribute(t, b, "Charles", 33.33, "2025-06-02")
	mustContribute(t, b, "Ross", 66.67, "2025-06-03")
	mustContribute(t, b, "Jayden", 10.01, "2025-06-04")
	mustContribute(t, b, "Brad", 75, "2025-06-05")

	var sum float64
	for _, member := range testMembers {
		sum += float64(b.Contributions.OwnershipPercentage(member))
	}
	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("ownership percentages sum to %v, want 100 within 1e-6", sum)
	}
}

func TestTotalContributedAsOf(t *testing.T) {
	b := newTestBook(t)
	mustContribute(t, b, "Charles", 100, "2025-06-01")
	mustContribute(t, b, "Charles", 50, "2025-06-18")

	testCases := []struct {
		cutoff string
		want   float64
	}{
		{"2025-05-31", 0},
		{"2025-06-01", 100}, // cutoff day included
		{"2025-06-17", 100},
		{"2025-06-18", 150},
	}
	for _, tc := range testCases {
		got := b.Contributions.TotalContributedAsOf("Charles", MustParseDate(tc.cutoff))
		if !got.Equal(AUD(tc.want)) {
			t.Errorf("TotalContributedAsOf(Charles, %s) = %s, want %v", tc.cutoff, got, tc.want)
		}
	}
}

func TestDateSpan(t *testing.T) {
	b := newTestBook(t)
	if _, _, ok := b.Contributions.DateSpan(); ok {
		t.Fatal("DateSpan() on an empty ledger should report not ok")
	}
	mustContribute(t, b, "Ross", 75, "2025-06-10")
	mustContribute(t, b, "Charles", 75, "2025-06-03")
	mustContribute(t, b, "Charles", 75, "2025-06-17")

	first, last, ok := b.Contributions.DateSpan()
	if !ok {
		t.Fatal("DateSpan() = not ok, want ok")
	}
	if first.String() != "2025-06-03" || last.String() != "2025-06-17" {
		t.Errorf("DateSpan() = %s..%s, want 2025-06-03..2025-06-17", first, last)
	}
}
