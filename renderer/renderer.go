// Package renderer renders inventory reports to markdown strings, leaving the
// terminal styling to the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/bookstore"
)

// Status returns the stock status label for a book.
func Status(b *bookstore.Book) string {
	switch {
	case !b.InStock():
		return "Out of Stock"
	case b.LowStock(bookstore.DefaultLowStockThreshold):
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// Books renders a book listing as a markdown table with the total inventory
// value as a footer line.
func Books(title string, books []*bookstore.Book, total bookstore.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%d books)\n\n", title, len(books))

	if len(books) == 0 {
		b.WriteString("No books in inventory.\n")
		return b.String()
	}

	b.WriteString("| Title | Author | Price | Stock | Value | Status |\n")
	b.WriteString("|---|---|---:|---:|---:|---|\n")
	for _, book := range books {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
			book.Title, book.Author, book.Price, book.Stock, book.Value(), Status(book))
	}
	fmt.Fprintf(&b, "\nTotal inventory value: **%s**\n", total)
	return b.String()
}

// Entry renders a single transaction log entry to a one-line summary.
func Entry(e bookstore.Entry) string {
	switch d := e.Details.(type) {
	case bookstore.AddDetails:
		return fmt.Sprintf("Added %q by %s at %s (initial stock %d)", d.Title, d.Author, d.Price, d.InitialStock)
	case bookstore.StockUpdateDetails:
		return fmt.Sprintf("Stock %d → %d (%+d): %s", d.OldStock, d.NewStock, d.Change, d.Reason)
	case bookstore.PriceUpdateDetails:
		return fmt.Sprintf("Price %s → %s", d.OldPrice, d.NewPrice)
	case bookstore.RemoveDetails:
		return fmt.Sprintf("Removed %q by %s (final stock %d)", d.Title, d.Author, d.FinalStock)
	default:
		return string(e.Action)
	}
}

// Log renders transaction log entries, most recent first, as markdown.
func Log(entries []bookstore.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Recent Transactions (last %d)\n\n", len(entries))

	if len(entries) == 0 {
		b.WriteString("No transactions recorded.\n")
		return b.String()
	}

	for i, e := range entries {
		fmt.Fprintf(&b, "%d. `%s` **%s** %s\n   %s\n",
			i+1, e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Title, Entry(e))
	}
	return b.String()
}
