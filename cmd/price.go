package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type priceCmd struct {
	title string
	price string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "update the price of a book" }
func (*priceCmd) Usage() string {
	return `bsi price -title <title> -price <price>

  Sets a new price, rounded up to the next cent, and records the change in
  the transaction log.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Book title")
	f.StringVar(&c.price, "price", "", "New price, e.g. 23.456")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -title and -price flags are required.")
		return subcommands.ExitUsageError
	}

	price, err := parsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	inv := openInventory()
	if err := inv.UpdatePrice(c.title, price); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveInventory(inv); status != subcommands.ExitSuccess {
		return status
	}

	book, _ := inv.Get(c.title)
	fmt.Printf("Updated price for %q: %s\n", book.Title, book.Price)
	return subcommands.ExitSuccess
}
