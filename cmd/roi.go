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

// roiCmd holds the flags for the 'roi' subcommand.
type roiCmd struct {
	date string
}

func (*roiCmd) Name() string     { return "roi" }
func (*roiCmd) Synopsis() string { return "display per-asset returns and the pool gain" }
func (*roiCmd) Usage() string {
	return `geezas roi [-d <date>]

  Displays each asset's invested amount, current value and return, plus the
  pool-level gain or loss against everything contributed.
`
}

func (c *roiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", club.Today().String(), "Date for the report title.")
}

func (c *roiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RenderROI(renderer.NewROI(b, fetchSnapshot(b), on)))
	return subcommands.ExitSuccess
}
