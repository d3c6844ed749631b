package bookstore

import (
	"fmt"
	"strings"
)

// DefaultLowStockThreshold is the stock level at or below which a book is
// reported as low stock.
const DefaultLowStockThreshold = 5

// Book is a single inventoriable record with a mutable price and stock count.
//
// Invariants: Stock >= 0 and Price >= 0 always, and Price is ceiling-rounded
// to the cent. The trimmed Title acts as the primary key within an Inventory.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Price  Money  `json:"price"`
	Stock  int    `json:"stock"`
}

// NewBook creates a book with a trimmed title and author, a ceiling-rounded
// price, and the stock clamped to zero.
//
// Note the asymmetry with UpdateStock: creation clamps an out-of-range stock
// silently while UpdateStock rejects it. Both behaviors are kept as observed
// in production; unifying them is a product decision, not a refactoring.
func NewBook(title, author string, price Money, stock int) *Book {
	return &Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Price:  price.CeilCents(),
		Stock:  max(0, stock),
	}
}

// UpdateStock applies a signed stock change. A change that would drive the
// stock negative returns ErrInsufficientStock and leaves the book unchanged.
func (b *Book) UpdateStock(delta int) error {
	newStock := b.Stock + delta
	if newStock < 0 {
		return fmt.Errorf("current %d, requested %d: %w", b.Stock, -delta, ErrInsufficientStock)
	}
	b.Stock = newStock
	return nil
}

// SetPrice replaces the price, ceiling-rounded to the cent. It never fails;
// non-negativity is a precondition enforced by the caller.
func (b *Book) SetPrice(price Money) {
	b.Price = price.CeilCents()
}

// Value returns the total value of the copies in stock,
// ceil(price × stock × 100) / 100.
func (b *Book) Value() Money {
	return b.Price.MulInt(b.Stock).CeilCents()
}

// InStock reports whether at least one copy is in stock.
func (b *Book) InStock() bool { return b.Stock > 0 }

// LowStock reports whether the stock is positive but at or below threshold.
func (b *Book) LowStock(threshold int) bool {
	return b.Stock > 0 && b.Stock <= threshold
}

// String renders the book in a single human-readable line.
func (b *Book) String() string {
	status := "Out of Stock"
	if b.InStock() {
		status = "In Stock"
	}
	return fmt.Sprintf("%q by %s - %s (%d units - %s)", b.Title, b.Author, b.Price, b.Stock, status)
}
