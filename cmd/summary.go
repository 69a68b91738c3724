package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cryptogeezas/club"
	"github.com/cryptogeezas/club/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the club's pool, equity and value" }
func (*summaryCmd) Usage() string {
	return `geezas summary [-d <date>]

  Displays the pool totals, each member's ownership and equity, and the
  portfolio's market value at current prices.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", club.Today().String(), "Date for the summary title.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := club.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(b, fetchSnapshot(b), on)))
	return subcommands.ExitSuccess
}
