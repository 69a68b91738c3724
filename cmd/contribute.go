package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cryptogeezas/club"
	"github.com/google/subcommands"
)

// contributeCmd holds the flags for the 'contribute' subcommand.
type contributeCmd struct {
	member string
	amount float64
	date   string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record a member's deposit into the pool" }
func (*contributeCmd) Usage() string {
	return `geezas contribute -m <member> -a <amount> [-d <date>]

  Records a contribution to the club pool. The amount grows the member's
  ownership share and the available balance for purchases.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.member, "m", "", "Contributing member's name.")
	f.Float64Var(&c.amount, "a", 0, "Amount contributed, in the reference currency.")
	f.StringVar(&c.date, "d", "", "Date of the contribution (defaults to today).")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rec, err := b.RecordContribution(c.member, club.M(c.amount, *currency), on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s from %s on %s. %s now owns %s of the pool.\n",
		rec.Amount, rec.Member, rec.Date,
		rec.Member, b.Contributions.OwnershipPercentage(rec.Member))
	return subcommands.ExitSuccess
}
