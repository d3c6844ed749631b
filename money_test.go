package bookstore

import (
	"encoding/json"
	"testing"
)

func TestMoney_CeilCents(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want string
	}{
		{name: "rounds up below the midpoint", in: 21.004, want: "21.01"},
		{name: "rounds up above the midpoint", in: 21.006, want: "21.01"},
		{name: "exact cents unchanged", in: 21.01, want: "21.01"},
		{name: "integer unchanged", in: 10, want: "10"},
		{name: "rounds up to next unit", in: 9.999, want: "10"},
		{name: "zero", in: 0, want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := M(tc.in, "USD").CeilCents()
			if got.Decimal().String() != tc.want {
				t.Errorf("CeilCents(%v) = %s, want %s", tc.in, got.Decimal(), tc.want)
			}
		})
	}
}

func TestMoney_String(t *testing.T) {
	if got := M(21.01, "USD").String(); got != "$21.01" {
		t.Errorf("String() = %q, want %q", got, "$21.01")
	}
	// An empty currency falls back to the default display currency.
	if got := M(5, "").String(); got != "$5.00" {
		t.Errorf("String() = %q, want %q", got, "$5.00")
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	in := M(21.004, "USD").CeilCents()

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "21.01" {
		t.Errorf("marshaled as %s, want a bare 21.01", data)
	}

	var out Money
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round-trip gave %s, want %s", out.Decimal(), in.Decimal())
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("21.004", "USD")
	if err != nil {
		t.Fatalf("ParseMoney failed: %v", err)
	}
	if m.CeilCents().Decimal().String() != "21.01" {
		t.Errorf("ParseMoney(21.004).CeilCents() = %s, want 21.01", m.CeilCents().Decimal())
	}

	if _, err := ParseMoney("not-a-price", "USD"); err == nil {
		t.Error("ParseMoney accepted garbage input")
	}
}
