package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "report the total inventory value" }
func (*valueCmd) Usage() string {
	return `bsi value

  Prints the total inventory value: the sum of price × stock over all books,
  each term rounded up to the next cent before summing.
`
}

func (*valueCmd) SetFlags(*flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv := openInventory()
	fmt.Printf("Total inventory value: %s (%d books)\n", inv.TotalValue(), inv.Len())
	return subcommands.ExitSuccess
}
