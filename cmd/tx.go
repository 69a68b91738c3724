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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	by   string
	desc bool
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the recorded transactions" }
func (*txCmd) Usage() string {
	return `geezas tx [-by occurred|recorded] [-desc] [-head <n>] [-tail <n>]

  Lists the transactions in the ledger, sorted by the date they occurred or
  the moment they were recorded.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "occurred", "Sort key: occurred or recorded.")
	f.BoolVar(&c.desc, "desc", false, "Sort newest first.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var by club.SortBy
	switch c.by {
	case "occurred":
		by = club.ByOccurred
	case "recorded":
		by = club.ByRecorded
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown sort key %q, use occurred or recorded.\n", c.by)
		return subcommands.ExitUsageError
	}
	order := club.Asc
	if c.desc {
		order = club.Desc
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	transactions := b.Transactions.History(by, order)
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
