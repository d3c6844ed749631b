package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookstore"
	"github.com/google/subcommands"
)

type removeCmd struct {
	title string
	yes   bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a book from the inventory" }
func (*removeCmd) Usage() string {
	return `bsi remove -title <title> [-y]

  Removes a book. Removing a book that still has stock requires the -y flag
  to confirm; without it the inventory is left unchanged.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Book title")
	f.BoolVar(&c.yes, "y", false, "Confirm removal even when stock is held")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: -title flag is required.")
		return subcommands.ExitUsageError
	}

	inv := openInventory()
	if err := inv.Remove(c.title, c.yes); err != nil {
		if errors.Is(err, bookstore.ErrNotConfirmed) {
			fmt.Fprintf(os.Stderr, "%v; re-run with -y to confirm.\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	if status := saveInventory(inv); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Removed book: %s\n", c.title)
	return subcommands.ExitSuccess
}
