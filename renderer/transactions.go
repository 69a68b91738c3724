package renderer

import "github.com/cryptogeezas/club"

// TransactionRow is one purchase line of the transaction listing.
type TransactionRow struct {
	Date     string
	Kind     string
	Asset    string
	Quantity string
	Price    string
	Fee      string
	Cost     string
	Memo     string
}

type transactionList struct {
	Rows []TransactionRow
}

// Transactions renders a transaction listing to a markdown string. The
// records are rendered in the order given, the caller picks the sort.
func Transactions(records []club.TransactionRecord) string {
	var list transactionList
	for _, rec := range records {
		list.Rows = append(list.Rows, TransactionRow{
			Date:     rec.Date.String(),
			Kind:     string(rec.Kind),
			Asset:    rec.Asset,
			Quantity: rec.Quantity.String(),
			Price:    rec.Price.String(),
			Fee:      rec.Fee.String(),
			Cost:     rec.Cost.String(),
			Memo:     rec.Memo,
		})
	}
	return renderTemplate("transactions", "transactions.md", nil, &list)
}
