package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookstore"
	"github.com/etnz/bookstore/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search books by title or author" }
func (*searchCmd) Usage() string {
	return `bsi search <term>

  Lists every book whose title or author contains the term,
  case-insensitively.
`
}

func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one search term is required.")
		return subcommands.ExitUsageError
	}

	inv := openInventory()
	results := inv.Find(f.Arg(0))

	var total bookstore.Money
	for _, book := range results {
		total = total.Add(book.Value())
	}
	printMarkdown(renderer.Books("Search Results", results, total))
	return subcommands.ExitSuccess
}
