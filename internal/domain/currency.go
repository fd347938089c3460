package domain

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyOption is a single entry for UI currency selectors
type CurrencyOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CurrencyTable holds conversion rates and display symbols.
// Each rate is the US-dollar value of one unit of the currency
// (USD = 1). The table is constructed explicitly and passed into
// whatever needs it, so tests can swap in their own rates.
type CurrencyTable struct {
	rates   map[string]float64
	symbols map[string]string
	names   map[string]string
	printer *message.Printer
}

func NewCurrencyTable(rates map[string]float64, symbols, names map[string]string) *CurrencyTable {
	return &CurrencyTable{
		rates:   rates,
		symbols: symbols,
		names:   names,
		printer: message.NewPrinter(language.English),
	}
}

// DefaultCurrencyTable returns the static production table.
func DefaultCurrencyTable() *CurrencyTable {
	return NewCurrencyTable(
		map[string]float64{
			"USD": 1,
			"EUR": 1.09,
			"GBP": 1.27,
			"AED": 0.2723,
			"SAR": 0.2667,
			"INR": 0.012,
			"PKR": 0.0036,
			"CNY": 0.1381,
			"SGD": 0.7463,
			"JPY": 0.0067,
			"KES": 0.0078,
		},
		map[string]string{
			"USD": "$",
			"EUR": "€",
			"GBP": "£",
			"AED": "د.إ",
			"SAR": "﷼",
			"INR": "₹",
			"PKR": "₨",
			"CNY": "¥",
			"SGD": "S$",
			"JPY": "¥",
			"KES": "KSh",
		},
		map[string]string{
			"USD": "US Dollar",
			"EUR": "Euro",
			"GBP": "British Pound",
			"AED": "UAE Dirham",
			"SAR": "Saudi Riyal",
			"INR": "Indian Rupee",
			"PKR": "Pakistani Rupee",
			"CNY": "Chinese Yuan",
			"SGD": "Singapore Dollar",
			"JPY": "Japanese Yen",
			"KES": "Kenyan Shilling",
		},
	)
}

// rate resolves a currency code to its USD-per-unit rate. Unknown
// codes resolve to 1, i.e. the amount is assumed to already be in base
// units.
func (t *CurrencyTable) rate(code string) float64 {
	if r, ok := t.rates[code]; ok && r != 0 {
		return r
	}
	return 1
}

// Convert converts an amount between two currency codes via the USD
// base unit. Same resolved rate is a fast path returning the amount
// unchanged.
func (t *CurrencyTable) Convert(amount float64, from, to string) float64 {
	rateFrom := t.rate(from)
	rateTo := t.rate(to)
	if rateFrom == rateTo {
		return amount
	}
	// amount*rateFrom is the USD value, /rateTo moves it into the
	// target currency.
	return amount * rateFrom / rateTo
}

// Symbol returns the display symbol for a code, defaulting to "$".
func (t *CurrencyTable) Symbol(code string) string {
	if s, ok := t.symbols[code]; ok {
		return s
	}
	return "$"
}

// Format renders an amount with its currency symbol, two decimal
// places and thousands separators, e.g. "$1,234.50".
func (t *CurrencyTable) Format(amount float64, code string) string {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return t.printer.Sprintf("%s%v", t.Symbol(code), number.Decimal(rounded,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Supported reports whether the code exists in the rate table.
func (t *CurrencyTable) Supported(code string) bool {
	_, ok := t.rates[code]
	return ok
}

// Options enumerates supported currencies for UI selectors, sorted by
// code.
func (t *CurrencyTable) Options() []CurrencyOption {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	options := make([]CurrencyOption, 0, len(codes))
	for _, code := range codes {
		label := code
		if name, ok := t.names[code]; ok {
			label = code + " - " + name
		}
		options = append(options, CurrencyOption{Value: code, Label: label})
	}
	return options
}
