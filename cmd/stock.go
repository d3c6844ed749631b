package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type stockCmd struct {
	title  string
	change int
	reason string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "apply a signed stock change to a book" }
func (*stockCmd) Usage() string {
	return `bsi stock -title <title> -change <±n> [-reason <text>]

  Applies a stock change. A change that would drive the stock negative is
  rejected and nothing is recorded.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Book title")
	f.IntVar(&c.change, "change", 0, "Signed stock change, e.g. -2 or 10")
	f.StringVar(&c.reason, "reason", "Manual Update", "Reason recorded in the transaction log")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: -title flag is required.")
		return subcommands.ExitUsageError
	}

	inv := openInventory()
	if err := inv.UpdateStock(c.title, c.change, c.reason); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveInventory(inv); status != subcommands.ExitSuccess {
		return status
	}

	book, _ := inv.Get(c.title)
	fmt.Printf("Updated stock for %q: %d\n", book.Title, book.Stock)
	return subcommands.ExitSuccess
}
