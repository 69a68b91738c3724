package club

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// TxKind identifies the kind of a ledger transaction. Only purchases exist:
// the club has no sell or withdrawal path, holdings only ever grow.
type TxKind string

// KindBuy is the only supported transaction kind.
const KindBuy TxKind = "buy"

// TransactionRecord is a single asset purchase against the shared balance.
// Records are immutable once appended. Cost is always Quantity*Price + Fee.
type TransactionRecord struct {
	ID       uuid.UUID
	Kind     TxKind
	Asset    string // upper-cased symbol, e.g. "BTC"
	Quantity Quantity
	Price    Money // price per unit
	Fee      Money
	Cost     Money
	Date     Date   // day of the purchase, may be backdated
	Memo     string // optional note
	Recorded time.Time
}

// SortBy selects the ordering key for transaction history.
type SortBy int

const (
	// ByOccurred orders by the purchase date, for chronological valuation.
	ByOccurred SortBy = iota
	// ByRecorded orders by append time, for history display.
	ByRecorded
)

// Order selects ascending or descending history.
type Order int

const (
	Asc Order = iota
	Desc
)

// TransactionLedger is the append-only record of asset purchases. It keeps
// the holdings projection consistent with the records: appending a buy is
// the only way holdings change.
type TransactionLedger struct {
	records  []TransactionRecord
	holdings Holdings
}

// NewTransactionLedger creates an empty transaction ledger.
func NewTransactionLedger() *TransactionLedger {
	return &TransactionLedger{holdings: make(Holdings)}
}

// append adds a record and projects it onto the holdings.
// Validation and the balance check belong to Book.RecordPurchase.
func (l *TransactionLedger) append(rec TransactionRecord) {
	l.records = append(l.records, rec)
	if rec.Kind == KindBuy {
		l.holdings[rec.Asset] = l.holdings[rec.Asset].Add(rec.Quantity)
	}
}

// TotalSpent returns the sum of total costs over all records.
func (l *TransactionLedger) TotalSpent() Money {
	var total Money
	for _, rec := range l.records {
		total = total.Add(rec.Cost)
	}
	return total
}

// Holdings returns a copy of the current holdings projection.
func (l *TransactionLedger) Holdings() Holdings {
	h := make(Holdings, len(l.holdings))
	for asset, qty := range l.holdings {
		h[asset] = qty
	}
	return h
}

// Len returns the number of records.
func (l *TransactionLedger) Len() int { return len(l.records) }

// History returns a sorted copy of the records. It never mutates the ledger
// and can be called repeatedly. The sort is stable, so same-day purchases
// keep their append order.
func (l *TransactionLedger) History(by SortBy, order Order) []TransactionRecord {
	out := make([]TransactionRecord, len(l.records))
	copy(out, l.records)
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch by {
		case ByRecorded:
			less = out[i].Recorded.Before(out[j].Recorded)
		default:
			less = out[i].Date.Before(out[j].Date)
		}
		if order == Desc {
			return !less && !equalKey(out[i], out[j], by)
		}
		return less
	})
	return out
}

func equalKey(a, b TransactionRecord, by SortBy) bool {
	if by == ByRecorded {
		return a.Recorded.Equal(b.Recorded)
	}
	return a.Date == b.Date
}

// AssetBuys returns the buy records for one asset, in append order.
func (l *TransactionLedger) AssetBuys(asset string) []TransactionRecord {
	var out []TransactionRecord
	for _, rec := range l.records {
		if rec.Kind == KindBuy && rec.Asset == asset {
			out = append(out, rec)
		}
	}
	return out
}

// newTransactionLedgerFromRecords rebuilds a ledger from persisted records
// and a persisted holdings document. The holdings document is authoritative;
// Book.Anomalies reports any drift from the records.
func newTransactionLedgerFromRecords(records []TransactionRecord, holdings Holdings) *TransactionLedger {
	l := NewTransactionLedger()
	l.records = append(l.records, records...)
	if holdings != nil {
		l.holdings = holdings
	} else {
		// no holdings document: project it from the records
		for _, rec := range records {
			if rec.Kind == KindBuy {
				l.holdings[rec.Asset] = l.holdings[rec.Asset].Add(rec.Quantity)
			}
		}
	}
	return l
}

// projectedHoldings replays the records into a fresh holdings map, ignoring
// the stored projection. Used for drift detection.
func (l *TransactionLedger) projectedHoldings() Holdings {
	h := make(Holdings)
	for _, rec := range l.records {
		if rec.Kind == KindBuy {
			h[rec.Asset] = h[rec.Asset].Add(rec.Quantity)
		}
	}
	return h
}

// newTransactionRecord builds a validated, costed record. Callers have
// already normalized the asset symbol.
func newTransactionRecord(asset string, qty Quantity, price, fee Money, on Date, memo string) TransactionRecord {
	return TransactionRecord{
		ID:       uuid.New(),
		Kind:     KindBuy,
		Asset:    asset,
		Quantity: qty,
		Price:    price,
		Fee:      fee,
		Cost:     price.Mul(qty).Add(fee),
		Date:     on,
		Memo:     memo,
		Recorded: time.Now(),
	}
}
