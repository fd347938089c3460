package domain

import (
	"math"
	"testing"
)

func testTable() *CurrencyTable {
	return NewCurrencyTable(
		map[string]float64{"USD": 1, "EUR": 2, "AED": 0.25},
		map[string]string{"USD": "$", "EUR": "€"},
		map[string]string{"USD": "US Dollar", "EUR": "Euro"},
	)
}

func TestConvertViaBase(t *testing.T) {
	table := testTable()

	if got := table.Convert(100, "EUR", "USD"); got != 200 {
		t.Fatalf("EUR->USD: expected 200, got %v", got)
	}
	if got := table.Convert(100, "USD", "AED"); got != 400 {
		t.Fatalf("USD->AED: expected 400, got %v", got)
	}
	if got := table.Convert(100, "EUR", "AED"); got != 800 {
		t.Fatalf("EUR->AED: expected 800, got %v", got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	table := DefaultCurrencyTable()

	amount := 1234.56
	back := table.Convert(table.Convert(amount, "AED", "INR"), "INR", "AED")
	if math.Abs(back-amount) > 1e-9 {
		t.Fatalf("round trip drifted: %v -> %v", amount, back)
	}
}

func TestConvertSameCurrencyIsIdentity(t *testing.T) {
	table := testTable()

	amount := 0.1 + 0.2 // not exactly representable
	if got := table.Convert(amount, "EUR", "EUR"); got != amount {
		t.Fatalf("same-currency conversion changed amount: %v != %v", got, amount)
	}
}

func TestConvertUnknownCodeFallsBack(t *testing.T) {
	table := testTable()

	// Unknown codes resolve to rate 1, so XXX->USD is identity.
	if got := table.Convert(50, "XXX", "USD"); got != 50 {
		t.Fatalf("unknown->USD: expected 50, got %v", got)
	}
	// Both unknown hits the fast path.
	if got := table.Convert(50, "XXX", "YYY"); got != 50 {
		t.Fatalf("unknown->unknown: expected 50, got %v", got)
	}
}

func TestSymbolFallback(t *testing.T) {
	table := testTable()

	if got := table.Symbol("EUR"); got != "€" {
		t.Fatalf("expected €, got %q", got)
	}
	if got := table.Symbol("XXX"); got != "$" {
		t.Fatalf("expected default $, got %q", got)
	}
}

func TestFormat(t *testing.T) {
	table := testTable()

	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{1234.5, "USD", "$1,234.50"},
		{0, "EUR", "€0.00"},
		{999999.999, "USD", "$1,000,000.00"},
		{42.004, "USD", "$42.00"},
	}
	for _, tc := range cases {
		if got := table.Format(tc.amount, tc.code); got != tc.want {
			t.Fatalf("Format(%v, %s): expected %q, got %q", tc.amount, tc.code, tc.want, got)
		}
	}
}

func TestOptionsSortedWithLabels(t *testing.T) {
	table := testTable()

	options := table.Options()
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}
	if options[0].Value != "AED" || options[1].Value != "EUR" || options[2].Value != "USD" {
		t.Fatalf("options not sorted by code: %+v", options)
	}
	if options[1].Label != "EUR - Euro" {
		t.Fatalf("expected label with name, got %q", options[1].Label)
	}
	// AED has no name entry, label falls back to the bare code.
	if options[0].Label != "AED" {
		t.Fatalf("expected bare code label, got %q", options[0].Label)
	}
}

func TestSupported(t *testing.T) {
	table := testTable()

	if !table.Supported("USD") {
		t.Fatal("USD should be supported")
	}
	if table.Supported("XXX") {
		t.Fatal("XXX should not be supported")
	}
}
