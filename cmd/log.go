package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bookstore/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	limit int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the most recent transactions" }
func (*logCmd) Usage() string {
	return `bsi log [-n <limit>]

  Shows the last entries of the transaction log, most recent first.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of entries to show")
}

func (c *logCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv := openInventory()
	printMarkdown(renderer.Log(inv.RecentTransactions(c.limit)))
	return subcommands.ExitSuccess
}
