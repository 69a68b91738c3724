package club

import (
	"fmt"
	"strings"
)

// Book encapsulates all the data required for club accounting: the member
// registry, the contribution ledger and the transaction ledger. It is the
// single mutation surface and is constructed once per process; there is no
// ambient global state.
//
// The club is a single-writer system: each mutation runs to completion
// against the in-memory book before the next read, and there is no locking
// between the balance check and the append in RecordPurchase.
type Book struct {
	Members       *MemberRegistry
	Contributions *ContributionLedger
	Transactions  *TransactionLedger
}

// NewBook creates an empty book for the given registry.
func NewBook(members *MemberRegistry) *Book {
	return &Book{
		Members:       members,
		Contributions: NewContributionLedger(members),
		Transactions:  NewTransactionLedger(),
	}
}

// RecordContribution appends a deposit for a member. See
// ContributionLedger.Record for the validation rules.
func (b *Book) RecordContribution(member string, amount Money, on Date) (ContributionRecord, error) {
	return b.Contributions.Record(member, amount, on)
}

// RecordPurchase validates and appends an asset purchase, incrementing the
// holdings projection. The asset symbol is trimmed and upper-cased. It
// returns a ValidationError for malformed input and an
// InsufficientBalanceError when the total cost exceeds the available balance
// at the moment of the call; in both cases nothing is appended.
func (b *Book) RecordPurchase(asset string, qty Quantity, price, fee Money, on Date, memo string) (TransactionRecord, error) {
	asset = strings.ToUpper(strings.TrimSpace(asset))
	if asset == "" {
		return TransactionRecord{}, validationf("asset symbol is missing")
	}
	if !qty.IsPositive() {
		return TransactionRecord{}, validationf("purchase quantity must be positive, got %s", qty)
	}
	if !price.IsPositive() {
		return TransactionRecord{}, validationf("unit price must be positive, got %s", price)
	}
	if fee.IsNegative() {
		return TransactionRecord{}, validationf("fee cannot be negative, got %s", fee)
	}
	if on.IsZero() {
		on = Today()
	}

	rec := newTransactionRecord(asset, qty, price, fee, on, memo)
	if available := b.AvailableBalance(); rec.Cost.GreaterThan(available) {
		return TransactionRecord{}, &InsufficientBalanceError{Cost: rec.Cost, Available: available}
	}
	b.Transactions.append(rec)
	return rec, nil
}

// AvailableBalance returns the pool contributions not yet spent on
// purchases. It is signed: a negative balance means recorded purchases
// exceed recorded contributions, which Anomalies reports rather than
// clamping away.
func (b *Book) AvailableBalance() Money {
	return b.Contributions.TotalPool().Sub(b.Transactions.TotalSpent())
}

// PortfolioValue computes the market value of the pool's holdings under a
// snapshot. Assets the snapshot cannot price are flagged in unpriced.
func (b *Book) PortfolioValue(snapshot PriceSnapshot) (Money, []string) {
	return b.Transactions.Holdings().Value(snapshot)
}

// Anomaly is a reportable inconsistency in the book. Anomalies are surfaced,
// never silently fixed.
type Anomaly struct {
	Code   string // "overspent" or "holdings-drift"
	Detail string
}

// Anomalies inspects the book for inconsistencies: an overspent pool
// (negative available balance, possible when contributions were recorded
// under stale data) and drift between the stored holdings document and the
// projection replayed from the transaction records.
func (b *Book) Anomalies() []Anomaly {
	var out []Anomaly
	if balance := b.AvailableBalance(); balance.IsNegative() {
		out = append(out, Anomaly{
			Code:   "overspent",
			Detail: fmt.Sprintf("available balance is negative: %s", balance),
		})
	}
	stored, projected := b.Transactions.Holdings(), b.Transactions.projectedHoldings()
	if !stored.Equal(projected) {
		out = append(out, Anomaly{
			Code:   "holdings-drift",
			Detail: fmt.Sprintf("stored holdings %v do not match transaction history %v", stored, projected),
		})
	}
	return out
}
