package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cryptogeezas/club"
	"github.com/google/subcommands"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	asset    string
	quantity float64
	price    float64
	fee      float64
	date     string
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record an asset purchase from the pool" }
func (*buyCmd) Usage() string {
	return `geezas buy -s <asset> -q <quantity> -p <price> [-fee <fee>] [-d <date>] [-memo <note>]

  Records a purchase paid from the pool's available balance. The total cost
  is quantity times unit price plus the fee; a purchase that exceeds the
  available balance is rejected.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "s", "", "Asset symbol, e.g. BTC.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity bought.")
	f.Float64Var(&c.price, "p", 0, "Unit price, in the reference currency.")
	f.Float64Var(&c.fee, "fee", 0, "Transaction fee, in the reference currency.")
	f.StringVar(&c.date, "d", "", "Date of the purchase (defaults to today).")
	f.StringVar(&c.memo, "memo", "", "Free-form note attached to the transaction.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on club.Date
	if c.date != "" {
		var err error
		on, err = club.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, err := b.RecordPurchase(c.asset, club.Q(c.quantity), club.M(c.price, *currency), club.M(c.fee, *currency), on, c.memo)
	var insufficient *club.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %s %s for %s on %s. Available balance is now %s.\n",
		rec.Quantity, rec.Asset, rec.Cost, rec.Date, b.AvailableBalance())
	return subcommands.ExitSuccess
}
