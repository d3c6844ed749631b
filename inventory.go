package bookstore

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Inventory owns the collection of books and its transaction log.
//
// It is a process-local mutable structure with no locking: a single caller
// runs one operation to completion before the next begins. Every successful
// mutation appends exactly one log entry; failed operations leave both the
// books and the log untouched.
type Inventory struct {
	books  map[string]*Book
	log    *TransactionLog
	clock  Clocker
	logger *zap.Logger
}

// Option configures an Inventory at construction time.
type Option func(*Inventory)

// WithClock replaces the clock used to timestamp log entries.
func WithClock(c Clocker) Option {
	return func(inv *Inventory) { inv.clock = c }
}

// WithLogger replaces the no-op logger used to report degraded operations.
func WithLogger(l *zap.Logger) Option {
	return func(inv *Inventory) { inv.logger = l }
}

// NewInventory creates an empty inventory.
func NewInventory(opts ...Option) *Inventory {
	inv := &Inventory{
		books:  make(map[string]*Book),
		log:    NewTransactionLog(),
		clock:  SystemClock{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// record appends a single entry to the transaction log.
func (inv *Inventory) record(action Action, title string, details Details) {
	inv.log.Append(Entry{
		Timestamp: inv.clock.Now(),
		Action:    action,
		Title:     title,
		Details:   details,
	})
}

// Add creates a book and inserts it under its trimmed title.
//
// When a book with the same title already exists the call is an idempotent
// no-op: the existing title is returned with added=false, the existing book
// is left untouched, and nothing is logged.
func (inv *Inventory) Add(title, author string, price Money, stock int) (string, bool) {
	book := NewBook(title, author, price, stock)

	if _, exists := inv.books[book.Title]; exists {
		inv.logger.Debug("book already exists", zap.String("title", book.Title))
		return book.Title, false
	}

	inv.books[book.Title] = book
	inv.record(ActionAddBook, book.Title, AddDetails{
		Title:        book.Title,
		Author:       book.Author,
		Price:        book.Price,
		InitialStock: stock, // as requested, before clamping
	})
	return book.Title, true
}

// Find returns every book whose title or author contains the search term,
// case-insensitively. The result may be empty and is sorted by title.
func (inv *Inventory) Find(term string) []*Book {
	term = strings.ToLower(strings.TrimSpace(term))

	var results []*Book
	for _, book := range inv.books {
		if strings.Contains(strings.ToLower(book.Title), term) ||
			strings.Contains(strings.ToLower(book.Author), term) {
			results = append(results, book)
		}
	}
	slices.SortFunc(results, func(a, b *Book) int { return strings.Compare(a.Title, b.Title) })
	return results
}

// Get returns the book stored under the exact title, or ErrNotFound.
func (inv *Inventory) Get(title string) (*Book, error) {
	book, ok := inv.books[title]
	if !ok {
		return nil, fmt.Errorf("%q: %w", title, ErrNotFound)
	}
	return book, nil
}

// UpdateStock applies a signed stock change to a book and logs it.
//
// It fails with ErrNotFound for an unknown title and with
// ErrInsufficientStock when the change would drive the stock negative; in
// both cases nothing is mutated and nothing is logged.
func (inv *Inventory) UpdateStock(title string, delta int, reason string) error {
	book, err := inv.Get(title)
	if err != nil {
		return err
	}

	oldStock := book.Stock
	if err := book.UpdateStock(delta); err != nil {
		return fmt.Errorf("could not update stock for %q: %w", title, err)
	}

	inv.record(ActionStockUpdate, title, StockUpdateDetails{
		OldStock: oldStock,
		NewStock: book.Stock,
		Change:   delta,
		Reason:   reason,
	})
	return nil
}

// Sell removes qty copies from stock, logging the sale.
func (inv *Inventory) Sell(title string, qty int) error {
	return inv.UpdateStock(title, -qty, fmt.Sprintf("Sale of %d units", qty))
}

// Restock adds qty copies to stock, logging the restock.
func (inv *Inventory) Restock(title string, qty int) error {
	return inv.UpdateStock(title, qty, fmt.Sprintf("Restock of %d units", qty))
}

// UpdatePrice replaces a book's price (ceiling-rounded) and logs the change.
func (inv *Inventory) UpdatePrice(title string, price Money) error {
	book, err := inv.Get(title)
	if err != nil {
		return err
	}

	oldPrice := book.Price
	book.SetPrice(price)

	inv.record(ActionPriceUpdate, title, PriceUpdateDetails{
		OldPrice: oldPrice,
		NewPrice: book.Price,
	})
	return nil
}

// Remove deletes a book from the inventory.
//
// Removing a book that still has stock requires confirmed=true; the
// confirmation is supplied by the caller (typically an interactive prompt),
// never decided here. The removal is logged before the book is deleted.
func (inv *Inventory) Remove(title string, confirmed bool) error {
	book, err := inv.Get(title)
	if err != nil {
		return err
	}

	if book.Stock > 0 && !confirmed {
		return fmt.Errorf("%q still has %d units in stock: %w", title, book.Stock, ErrNotConfirmed)
	}

	inv.record(ActionRemoveBook, title, RemoveDetails{
		Title:      book.Title,
		Author:     book.Author,
		FinalStock: book.Stock,
	})
	delete(inv.books, title)
	return nil
}

// RecentTransactions returns up to limit log entries, most recent first.
func (inv *Inventory) RecentTransactions(limit int) []Entry {
	return inv.log.Recent(limit)
}

// TotalValue computes the total inventory value: the sum of every book's
// value, each term independently ceiling-rounded before summing.
func (inv *Inventory) TotalValue() Money {
	var total Money
	for _, book := range inv.books {
		total = total.Add(book.Value())
	}
	return total
}

// Len returns the number of books in the inventory.
func (inv *Inventory) Len() int { return len(inv.books) }

// Books iterates over the books sorted by title.
func (inv *Inventory) Books() iter.Seq[*Book] {
	return func(yield func(*Book) bool) {
		titles := slices.Collect(maps.Keys(inv.books))
		slices.Sort(titles)
		for _, title := range titles {
			if !yield(inv.books[title]) {
				return
			}
		}
	}
}

// Log returns the transaction log. The log is owned by the inventory and is
// append-only; callers must not retain and mutate it.
func (inv *Inventory) Log() *TransactionLog { return inv.log }
