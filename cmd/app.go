// Package cmd implements the CLI application to run the club ledger.
package cmd

import (
	"flag"
	"strings"

	"github.com/cryptogeezas/club"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")

	c.Register(&contributeCmd{}, "ledger")
	c.Register(&buyCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&weeklyCmd{}, "reports")
	c.Register(&roiCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".", "Directory holding the club's JSON documents")
var memberList = flag.String("members", "Charles, Ross Parmenter, Jayden Kenna, Brad Johnson", "Comma-separated list of club members")
var currency = flag.String("currency", club.DefaultCurrency, "Reference currency for contributions and valuations")

// openStore builds the store for the data directory, labeling the documents'
// bare amounts with the selected currency.
func openStore() *club.BookStore {
	s := club.NewBookStore(*dataDir)
	s.Currency = *currency
	return s
}

// openBook loads the club book from the data directory. A missing directory
// yields an empty book, so first runs work without any setup.
func openBook() (*club.Book, error) {
	var names []string
	for _, name := range strings.Split(*memberList, ",") {
		names = append(names, strings.TrimSpace(name))
	}
	members, err := club.NewMemberRegistry(names...)
	if err != nil {
		return nil, err
	}
	return openStore().Load(members), nil
}

// saveBook writes the book back to the data directory.
func saveBook(b *club.Book) error {
	return openStore().Save(b)
}

// fetchSnapshot gets current prices for every held asset, falling back to the
// supported defaults when nothing is held yet.
func fetchSnapshot(b *club.Book) club.PriceSnapshot {
	assets := b.Transactions.Holdings().Assets()
	if len(assets) == 0 {
		assets = []string{"BTC", "ETH"}
	}
	return club.NewPriceOracle(*currency).Fetch(assets...)
}
