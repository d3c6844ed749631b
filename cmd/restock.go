package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	title string
	qty   int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add copies of a book to stock" }
func (*restockCmd) Usage() string {
	return `bsi restock -title <title> -qty <n>

  Adds copies to stock and records the restock in the transaction log.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Book title")
	f.IntVar(&c.qty, "qty", 0, "Quantity to add")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: -title flag is required.")
		return subcommands.ExitUsageError
	}
	if c.qty <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -qty must be positive.")
		return subcommands.ExitUsageError
	}

	inv := openInventory()
	if err := inv.Restock(c.title, c.qty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveInventory(inv); status != subcommands.ExitSuccess {
		return status
	}

	book, _ := inv.Get(c.title)
	fmt.Printf("Restocked %q: %d in stock\n", book.Title, book.Stock)
	return subcommands.ExitSuccess
}
