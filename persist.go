package bookstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"
)

// BackupSuffix is appended to the inventory path to hold the previous
// generation of the file. A single generation is kept, not a history.
const BackupSuffix = ".backup"

// document is the persisted form of an Inventory: one JSON object per file.
type document struct {
	Books          map[string]*Book `json:"books"`
	TransactionLog []Entry          `json:"transaction_log"`
	LastUpdated    string           `json:"last_updated"`
	TotalBooks     int              `json:"total_books"`
	TotalValue     Money            `json:"total_inventory_value"`
}

// snapshot captures the full inventory state as a persistable document.
func (inv *Inventory) snapshot(now time.Time) document {
	entries := make([]Entry, 0, inv.log.Len())
	for _, e := range inv.log.Entries() {
		entries = append(entries, e)
	}
	return document{
		Books:          inv.books,
		TransactionLog: entries,
		LastUpdated:    now.Format(time.RFC3339Nano),
		TotalBooks:     len(inv.books),
		TotalValue:     inv.TotalValue(),
	}
}

// Save writes the inventory to path as an indented JSON document.
//
// If a file already exists at path it is renamed to path+BackupSuffix first,
// overwriting any prior backup. The rename is not rolled back when the write
// step fails, so a failed save can leave the previous generation only in the
// backup file. The in-memory inventory is never affected by a failed save.
func (inv *Inventory) Save(path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+BackupSuffix); err != nil {
			inv.logger.Error("could not rotate inventory backup", zap.String("path", path), zap.Error(err))
			return fmt.Errorf("could not rotate backup for %q: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(inv.snapshot(inv.clock.Now()), "", "  ")
	if err != nil {
		inv.logger.Error("could not encode inventory", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("could not encode inventory for %q: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		inv.logger.Error("could not write inventory", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("could not write inventory to %q: %w", path, err)
	}

	inv.logger.Info("inventory saved",
		zap.String("path", path),
		zap.Int("books", len(inv.books)),
		zap.Int("transactions", inv.log.Len()))
	return nil
}

// Load reads an inventory document from path.
//
// An absent file is not an error: a fresh, empty inventory is returned. A
// malformed document is reported through the returned error, and the
// inventory still degrades to an empty, usable state rather than failing the
// caller outright.
func Load(path string, opts ...Option) (*Inventory, error) {
	inv := NewInventory(opts...)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		inv.logger.Info("no existing inventory file, starting fresh", zap.String("path", path))
		return inv, nil
	}
	if err != nil {
		inv.logger.Warn("could not read inventory, starting empty", zap.String("path", path), zap.Error(err))
		return NewInventory(opts...), fmt.Errorf("could not read inventory %q: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		inv.logger.Warn("could not decode inventory, starting empty", zap.String("path", path), zap.Error(err))
		return NewInventory(opts...), fmt.Errorf("could not decode inventory %q: %w", path, err)
	}

	for key, book := range doc.Books {
		if book == nil || book.Title == "" {
			inv.logger.Warn("inventory document misses required book fields, starting empty",
				zap.String("path", path), zap.String("key", key))
			return NewInventory(opts...), fmt.Errorf("book %q in %q misses required fields: %w", key, path, ErrInvalidInput)
		}
		// Reconstruction goes through the constructor so the trimming,
		// rounding and clamping invariants hold for hand-edited files too.
		inv.books[key] = NewBook(book.Title, book.Author, book.Price, book.Stock)
	}
	for _, e := range doc.TransactionLog {
		inv.log.Append(e)
	}

	inv.logger.Info("inventory loaded",
		zap.String("path", path),
		zap.Int("books", len(inv.books)),
		zap.Int("transactions", inv.log.Len()))
	return inv, nil
}
