package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	title string
	qty   int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell copies of a book" }
func (*sellCmd) Usage() string {
	return `bsi sell -title <title> [-qty <n>]

  Sells copies (1 by default), records the sale in the transaction log, and
  reports the sale total. Selling more copies than are in stock is rejected.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Book title")
	f.IntVar(&c.qty, "qty", 1, "Quantity to sell")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: -title flag is required.")
		return subcommands.ExitUsageError
	}
	if c.qty <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -qty must be positive.")
		return subcommands.ExitUsageError
	}

	inv := openInventory()
	if err := inv.Sell(c.title, c.qty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveInventory(inv); status != subcommands.ExitSuccess {
		return status
	}

	book, _ := inv.Get(c.title)
	total := book.Price.MulInt(c.qty).CeilCents()
	fmt.Printf("Sale completed. Total: %s (%d left in stock)\n", total, book.Stock)
	return subcommands.ExitSuccess
}
