package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/etnz/bookstore/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all books in the inventory" }
func (*listCmd) Usage() string {
	return `bsi list

  Lists every book sorted by title, with its stock status and value, and the
  total inventory value.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv := openInventory()
	printMarkdown(renderer.Books("Inventory", slices.Collect(inv.Books()), inv.TotalValue()))
	return subcommands.ExitSuccess
}
