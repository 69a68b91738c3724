package club

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The three documents keep the shapes of the original club tracker:
// contributions.json maps member name to rows, transactions.json is a flat
// row list, portfolio.json maps symbol to quantity. Amounts are plain
// numbers in the reference currency.

// plainDecimal marshals as a bare JSON number instead of the quoted string
// decimal.Decimal produces by default. The choice stays local to the row
// types; the package never touches decimal's global marshal setting.
type plainDecimal decimal.Decimal

func (d plainDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(d).String()), nil
}

// UnmarshalJSON accepts both bare and quoted numbers, so documents written
// by other tooling still load.
func (d *plainDecimal) UnmarshalJSON(b []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	*d = plainDecimal(v)
	return nil
}

// contributionRow is the persisted shape of a ContributionRecord.
type contributionRow struct {
	ID        uuid.UUID    `json:"id,omitempty"`
	Amount    plainDecimal `json:"amount"`
	Date      Date         `json:"date"`
	Timestamp time.Time    `json:"timestamp"`
}

// transactionRow is the persisted shape of a TransactionRecord.
type transactionRow struct {
	ID        uuid.UUID    `json:"id,omitempty"`
	Crypto    string       `json:"crypto"`
	Amount    plainDecimal `json:"amount"`
	Price     plainDecimal `json:"price"`
	Fee       plainDecimal `json:"transaction_fee"`
	TotalCost plainDecimal `json:"total_cost"`
	Kind      TxKind       `json:"type"`
	Date      Date         `json:"date"`
	Notes     string       `json:"notes,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// EncodeContributions writes the contribution ledger as a single JSON
// document mapping member name to contribution rows. Every registered
// member appears, even with no contributions yet.
func EncodeContributions(w io.Writer, l *ContributionLedger) error {
	doc := make(map[string][]contributionRow)
	for _, member := range l.members.Names() {
		rows := make([]contributionRow, 0, len(l.records[member]))
		for _, rec := range l.records[member] {
			rows = append(rows, contributionRow{
				ID:        rec.ID,
				Amount:    plainDecimal(rec.Amount.Decimal()),
				Date:      rec.Date,
				Timestamp: rec.Recorded,
			})
		}
		doc[member] = rows
	}
	return encodeIndented(w, doc)
}

// DecodeContributions reads the contributions document back into records
// keyed by member. The documents store bare numbers, so amounts are labeled
// with the given reference currency.
func DecodeContributions(r io.Reader, currency string) (map[string][]ContributionRecord, error) {
	var doc map[string][]contributionRow
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode contributions document: %w", err)
	}
	records := make(map[string][]ContributionRecord, len(doc))
	for member, rows := range doc {
		for _, row := range rows {
			records[member] = append(records[member], ContributionRecord{
				ID:       row.ID,
				Member:   member,
				Amount:   M(decimal.Decimal(row.Amount), currency),
				Date:     row.Date,
				Recorded: row.Timestamp,
			})
		}
	}
	return records, nil
}

// EncodeTransactions writes the transaction ledger as a single JSON array in
// append order.
func EncodeTransactions(w io.Writer, l *TransactionLedger) error {
	rows := make([]transactionRow, 0, len(l.records))
	for _, rec := range l.records {
		rows = append(rows, transactionRow{
			ID:        rec.ID,
			Crypto:    rec.Asset,
			Amount:    plainDecimal(rec.Quantity.Decimal()),
			Price:     plainDecimal(rec.Price.Decimal()),
			Fee:       plainDecimal(rec.Fee.Decimal()),
			TotalCost: plainDecimal(rec.Cost.Decimal()),
			Kind:      rec.Kind,
			Date:      rec.Date,
			Notes:     rec.Memo,
			Timestamp: rec.Recorded,
		})
	}
	return encodeIndented(w, rows)
}

// DecodeTransactions reads the transactions document back into records,
// labeling monetary fields with the given reference currency.
func DecodeTransactions(r io.Reader, currency string) ([]TransactionRecord, error) {
	var rows []transactionRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("could not decode transactions document: %w", err)
	}
	records := make([]TransactionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, TransactionRecord{
			ID:       row.ID,
			Kind:     row.Kind,
			Asset:    row.Crypto,
			Quantity: Q(decimal.Decimal(row.Amount)),
			Price:    M(decimal.Decimal(row.Price), currency),
			Fee:      M(decimal.Decimal(row.Fee), currency),
			Cost:     M(decimal.Decimal(row.TotalCost), currency),
			Date:     row.Date,
			Memo:     row.Notes,
			Recorded: row.Timestamp,
		})
	}
	return records, nil
}

// EncodeHoldings writes the holdings projection as a symbol to quantity map.
func EncodeHoldings(w io.Writer, h Holdings) error {
	doc := make(map[string]plainDecimal, len(h))
	for asset, qty := range h {
		doc[asset] = plainDecimal(qty.Decimal())
	}
	return encodeIndented(w, doc)
}

// DecodeHoldings reads the holdings document.
func DecodeHoldings(r io.Reader) (Holdings, error) {
	var doc map[string]plainDecimal
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode holdings document: %w", err)
	}
	h := make(Holdings, len(doc))
	for asset, qty := range doc {
		h[asset] = Q(decimal.Decimal(qty))
	}
	return h, nil
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
