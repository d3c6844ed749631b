package bookstore

import (
	"errors"
	"testing"
)

func newTestInventory(t *testing.T) *Inventory {
	t.Helper()
	return NewInventory(WithClock(newTestClock()))
}

func TestInventory_Add(t *testing.T) {
	inv := newTestInventory(t)

	title, added := inv.Add(" Dune ", "Frank Herbert", M(21.004, "USD"), 3)
	if !added {
		t.Fatal("Add reported an existing book on first insert")
	}
	if title != "Dune" {
		t.Errorf("Add returned key %q, want trimmed %q", title, "Dune")
	}
	if inv.Log().Len() != 1 {
		t.Fatalf("Add appended %d entries, want exactly 1", inv.Log().Len())
	}

	book, err := inv.Get("Dune")
	if err != nil {
		t.Fatalf("Get after Add failed: %v", err)
	}
	if book.Price.Decimal().String() != "21.01" {
		t.Errorf("stored price %s, want 21.01", book.Price.Decimal())
	}

	// The log keeps the requested initial stock, before clamping.
	inv.Add("Void", "Nobody", M(5, "USD"), -2)
	last := inv.RecentTransactions(1)[0]
	details, ok := last.Details.(AddDetails)
	if !ok {
		t.Fatalf("last entry details are %T, want AddDetails", last.Details)
	}
	if details.InitialStock != -2 {
		t.Errorf("logged initial_stock = %d, want requested -2", details.InitialStock)
	}
	void, _ := inv.Get("Void")
	if void.Stock != 0 {
		t.Errorf("stored stock = %d, want clamped 0", void.Stock)
	}
}

func TestInventory_AddDuplicateIsNoOp(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3)

	title, added := inv.Add("Dune", "Somebody Else", M(99, "USD"), 50)
	if added {
		t.Error("Add reported success for a duplicate title")
	}
	if title != "Dune" {
		t.Errorf("duplicate Add returned %q, want existing key %q", title, "Dune")
	}

	// The existing book is untouched and nothing was logged.
	book, _ := inv.Get("Dune")
	if book.Author != "Frank Herbert" || book.Stock != 3 {
		t.Errorf("duplicate Add mutated the book: %v", book)
	}
	if inv.Log().Len() != 1 {
		t.Errorf("duplicate Add appended an entry: log has %d entries, want 1", inv.Log().Len())
	}
}

func TestInventory_Find(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3)
	inv.Add("Dune Messiah", "Frank Herbert", M(18.5, "USD"), 1)
	inv.Add("Neuromancer", "William Gibson", M(15, "USD"), 2)

	testCases := []struct {
		term string
		want int
	}{
		{term: "dune", want: 2},
		{term: "HERBERT", want: 2},
		{term: " gibson ", want: 1},
		{term: "asimov", want: 0},
		{term: "", want: 3},
	}

	for _, tc := range testCases {
		if got := len(inv.Find(tc.term)); got != tc.want {
			t.Errorf("Find(%q) returned %d books, want %d", tc.term, got, tc.want)
		}
	}
}

func TestInventory_Get(t *testing.T) {
	inv := newTestInventory(t)
	if _, err := inv.Get("Dune"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty inventory = %v, want ErrNotFound", err)
	}
}

func TestInventory_UpdateStock(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3)

	if err := inv.UpdateStock("Dune", 2, "delivery"); err != nil {
		t.Fatalf("UpdateStock failed: %v", err)
	}
	last := inv.RecentTransactions(1)[0]
	details, ok := last.Details.(StockUpdateDetails)
	if !ok {
		t.Fatalf("last entry details are %T, want StockUpdateDetails", last.Details)
	}
	want := StockUpdateDetails{OldStock: 3, NewStock: 5, Change: 2, Reason: "delivery"}
	if details != want {
		t.Errorf("logged %+v, want %+v", details, want)
	}

	if err := inv.UpdateStock("Missing", 1, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStock on unknown title = %v, want ErrNotFound", err)
	}
}

func TestInventory_UpdateStockInsufficient(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3)
	logged := inv.Log().Len()

	err := inv.UpdateStock("Dune", -5, "oversell")
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("UpdateStock(-5) = %v, want ErrInsufficientStock", err)
	}

	book, _ := inv.Get("Dune")
	if book.Stock != 3 {
		t.Errorf("failed update mutated stock to %d, want 3", book.Stock)
	}
	if inv.Log().Len() != logged {
		t.Errorf("failed update appended an entry: log has %d entries, want %d", inv.Log().Len(), logged)
	}
}

func TestInventory_SellAndRestock(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3)

	if err := inv.Sell("Dune", 2); err != nil {
		t.Fatalf("Sell failed: %v", err)
	}
	details := inv.RecentTransactions(1)[0].Details.(StockUpdateDetails)
	if details.Reason != "Sale of 2 units" || details.Change != -2 {
		t.Errorf("Sell logged %+v", details)
	}

	if err := inv.Restock("Dune", 10); err != nil {
		t.Fatalf("Restock failed: %v", err)
	}
	details = inv.RecentTransactions(1)[0].Details.(StockUpdateDetails)
	if details.Reason != "Restock of 10 units" || details.Change != 10 {
		t.Errorf("Restock logged %+v", details)
	}

	book, _ := inv.Get("Dune")
	if book.Stock != 11 {
		t.Errorf("stock = %d, want 11", book.Stock)
	}
}

func TestInventory_UpdatePrice(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3)

	if err := inv.UpdatePrice("Dune", M(23.456, "USD")); err != nil {
		t.Fatalf("UpdatePrice failed: %v", err)
	}

	book, _ := inv.Get("Dune")
	if book.Price.Decimal().String() != "23.46" {
		t.Errorf("price = %s, want ceiling-rounded 23.46", book.Price.Decimal())
	}

	details := inv.RecentTransactions(1)[0].Details.(PriceUpdateDetails)
	if !details.OldPrice.Equal(M(21.01, "USD")) || !details.NewPrice.Equal(M(23.46, "USD")) {
		t.Errorf("logged %+v", details)
	}

	if err := inv.UpdatePrice("Missing", M(1, "USD")); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatePrice on unknown title = %v, want ErrNotFound", err)
	}
}

func TestInventory_Remove(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3)
	logged := inv.Log().Len()

	// Stock is held and the caller did not confirm: nothing happens.
	if err := inv.Remove("Dune", false); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("unconfirmed Remove = %v, want ErrNotConfirmed", err)
	}
	if _, err := inv.Get("Dune"); err != nil {
		t.Fatal("unconfirmed Remove deleted the book")
	}
	if inv.Log().Len() != logged {
		t.Error("unconfirmed Remove appended an entry")
	}

	if err := inv.Remove("Dune", true); err != nil {
		t.Fatalf("confirmed Remove failed: %v", err)
	}
	if _, err := inv.Get("Dune"); !errors.Is(err, ErrNotFound) {
		t.Error("book still present after confirmed Remove")
	}
	details := inv.RecentTransactions(1)[0].Details.(RemoveDetails)
	if details.Title != "Dune" || details.FinalStock != 3 {
		t.Errorf("Remove logged %+v", details)
	}

	if err := inv.Remove("Dune", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove of an absent book = %v, want ErrNotFound", err)
	}
}

func TestInventory_RemoveWithoutStockNeedsNoConfirmation(t *testing.T) {
	inv := newTestInventory(t)
	inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 0)

	if err := inv.Remove("Dune", false); err != nil {
		t.Fatalf("Remove of an out-of-stock book required confirmation: %v", err)
	}
}

func TestInventory_TotalValue(t *testing.T) {
	inv := newTestInventory(t)
	if !inv.TotalValue().IsZero() {
		t.Errorf("empty inventory TotalValue = %s, want 0", inv.TotalValue().Decimal())
	}

	inv.Add("Dune", "Frank Herbert", M(21.004, "USD"), 3)
	inv.Add("Neuromancer", "William Gibson", M(15, "USD"), 2)

	// 63.03 + 30 = 93.03, each term ceiling-rounded independently.
	if got := inv.TotalValue(); got.Decimal().String() != "93.03" {
		t.Errorf("TotalValue = %s, want 93.03", got.Decimal())
	}
}

func TestInventory_EveryMutationLogsExactlyOneEntry(t *testing.T) {
	inv := newTestInventory(t)

	steps := []struct {
		name string
		op   func() error
	}{
		{"add", func() error {
			if _, added := inv.Add("Dune", "Frank Herbert", M(21.01, "USD"), 3); !added {
				return errors.New("not added")
			}
			return nil
		}},
		{"restock", func() error { return inv.Restock("Dune", 2) }},
		{"sell", func() error { return inv.Sell("Dune", 1) }},
		{"price", func() error { return inv.UpdatePrice("Dune", M(25, "USD")) }},
		{"remove", func() error { return inv.Remove("Dune", true) }},
	}

	for i, step := range steps {
		if err := step.op(); err != nil {
			t.Fatalf("step %s failed: %v", step.name, err)
		}
		if inv.Log().Len() != i+1 {
			t.Fatalf("after %s the log has %d entries, want %d", step.name, inv.Log().Len(), i+1)
		}
	}
}
