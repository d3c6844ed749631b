package bookstore

import (
	"encoding/json"
	"fmt"
	"iter"
	"time"
)

// Action is a typed string identifying the kind of mutation an Entry records.
type Action string

// Actions recorded in the transaction log. The set is extensible: new actions
// only require a new details type and a case in Entry.UnmarshalJSON.
const (
	ActionAddBook     Action = "ADD_BOOK"
	ActionStockUpdate Action = "STOCK_UPDATE"
	ActionPriceUpdate Action = "PRICE_UPDATE"
	ActionRemoveBook  Action = "REMOVE_BOOK"
)

// Details is the action-specific payload of a log entry.
type Details interface {
	// What returns the action this payload belongs to.
	What() Action
}

// AddDetails records the creation of a book.
//
// InitialStock is the stock as requested by the caller, before clamping; the
// log keeps what was asked for, the book keeps what was applied.
type AddDetails struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Price        Money  `json:"price"`
	InitialStock int    `json:"initial_stock"`
}

func (AddDetails) What() Action { return ActionAddBook }

// StockUpdateDetails records a successful stock change.
type StockUpdateDetails struct {
	OldStock int    `json:"old_stock"`
	NewStock int    `json:"new_stock"`
	Change   int    `json:"change"`
	Reason   string `json:"reason"`
}

func (StockUpdateDetails) What() Action { return ActionStockUpdate }

// PriceUpdateDetails records a price change.
type PriceUpdateDetails struct {
	OldPrice Money `json:"old_price"`
	NewPrice Money `json:"new_price"`
}

func (PriceUpdateDetails) What() Action { return ActionPriceUpdate }

// RemoveDetails records the removal of a book, including the stock it still
// had when it was removed.
type RemoveDetails struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	FinalStock int    `json:"final_stock"`
}

func (RemoveDetails) What() Action { return ActionRemoveBook }

// Entry is a single immutable record in the transaction log.
type Entry struct {
	Timestamp time.Time
	Action    Action
	Title     string // title of the book affected
	Details   Details
}

// MarshalJSON writes the entry with a fixed field order for canonical output.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("timestamp", e.Timestamp.Format(time.RFC3339Nano))
	w.Append("action", e.Action)
	w.Append("title", e.Title)
	w.Append("details", e.Details)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes an entry, selecting the details type from the action.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var temp struct {
		Timestamp string          `json:"timestamp"`
		Action    Action          `json:"action"`
		Title     string          `json:"title"`
		Details   json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	ts, err := time.Parse(time.RFC3339Nano, temp.Timestamp)
	if err != nil {
		return fmt.Errorf("could not parse entry timestamp %q: %w", temp.Timestamp, err)
	}

	var details Details
	switch temp.Action {
	case ActionAddBook:
		var d AddDetails
		err = json.Unmarshal(temp.Details, &d)
		details = d
	case ActionStockUpdate:
		var d StockUpdateDetails
		err = json.Unmarshal(temp.Details, &d)
		details = d
	case ActionPriceUpdate:
		var d PriceUpdateDetails
		err = json.Unmarshal(temp.Details, &d)
		details = d
	case ActionRemoveBook:
		var d RemoveDetails
		err = json.Unmarshal(temp.Details, &d)
		details = d
	default:
		return fmt.Errorf("unknown transaction action: %q", temp.Action)
	}
	if err != nil {
		return fmt.Errorf("could not decode %s details: %w", temp.Action, err)
	}

	e.Timestamp = ts
	e.Action = temp.Action
	e.Title = temp.Title
	e.Details = details
	return nil
}

// Equal reports whether two entries record the same mutation at the same time.
func (e Entry) Equal(other Entry) bool {
	if !e.Timestamp.Equal(other.Timestamp) || e.Action != other.Action || e.Title != other.Title {
		return false
	}
	switch d := e.Details.(type) {
	case AddDetails:
		o, ok := other.Details.(AddDetails)
		return ok && d.Title == o.Title && d.Author == o.Author &&
			d.Price.Equal(o.Price) && d.InitialStock == o.InitialStock
	case StockUpdateDetails:
		o, ok := other.Details.(StockUpdateDetails)
		return ok && d == o
	case PriceUpdateDetails:
		o, ok := other.Details.(PriceUpdateDetails)
		return ok && d.OldPrice.Equal(o.OldPrice) && d.NewPrice.Equal(o.NewPrice)
	case RemoveDetails:
		o, ok := other.Details.(RemoveDetails)
		return ok && d == o
	default:
		return false
	}
}

// TransactionLog is the append-only audit trail of an Inventory.
//
// Entries are never mutated or removed after they are appended, and their
// timestamps are non-decreasing in append order.
type TransactionLog struct {
	entries []Entry
}

// NewTransactionLog creates an empty transaction log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{entries: make([]Entry, 0)}
}

// Append adds an entry at the end of the log. If the entry's timestamp is
// before the last recorded one (a clock stepping backwards), it is clamped to
// keep the append order and the timestamp order consistent.
func (l *TransactionLog) Append(e Entry) {
	if n := len(l.entries); n > 0 && e.Timestamp.Before(l.entries[n-1].Timestamp) {
		e.Timestamp = l.entries[n-1].Timestamp
	}
	l.entries = append(l.entries, e)
}

// Len returns the number of entries in the log.
func (l *TransactionLog) Len() int { return len(l.entries) }

// Entries returns an iterator that yields each entry in append order.
func (l *TransactionLog) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Recent returns up to limit entries, most recent first. The log itself is
// not modified.
func (l *TransactionLog) Recent(limit int) []Entry {
	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}
	recent := make([]Entry, 0, limit)
	for i := len(l.entries) - 1; i >= len(l.entries)-limit; i-- {
		recent = append(recent, l.entries[i])
	}
	return recent
}
