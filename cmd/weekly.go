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

// weeklyCmd holds the flags for the 'weekly' subcommand.
type weeklyCmd struct {
	date string
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display the weekly contribution report" }
func (*weeklyCmd) Usage() string {
	return `geezas weekly [-d <date>]

  Displays each member's contributions and ownership movement over the past
  seven days, the weekly contribution streaks, and the history heatmap.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", club.Today().String(), "End date for the report period.")
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := club.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderWeekly(renderer.NewWeekly(b, fetchSnapshot(b), asOf)))
	return subcommands.ExitSuccess
}
