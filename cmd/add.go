package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	title  string
	author string
	price  string
	stock  int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new book to the inventory" }
func (*addCmd) Usage() string {
	return `bsi add -title <title> -author <author> -price <price> [-stock <n>]

  Adds a book. The price is rounded up to the next cent and the initial
  stock defaults to 0. Adding a title that already exists is a no-op.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Book title (acts as the unique key)")
	f.StringVar(&c.author, "author", "", "Author name")
	f.StringVar(&c.price, "price", "", "Price, e.g. 21.004")
	f.IntVar(&c.stock, "stock", 0, "Initial stock")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" || c.author == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -title, -author, and -price flags are all required.")
		return subcommands.ExitUsageError
	}

	price, err := parsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	inv := openInventory()
	title, added := inv.Add(c.title, c.author, price, c.stock)
	if !added {
		fmt.Printf("Book already exists: %s\n", title)
		return subcommands.ExitSuccess
	}

	if status := saveInventory(inv); status != subcommands.ExitSuccess {
		return status
	}
	book, _ := inv.Get(title)
	fmt.Printf("Added book: %s\n", book)
	return subcommands.ExitSuccess
}
