package domain

import "time"

// LedgerView selects which records feed a ledger and how each entry
// contributes to the running balance.
type LedgerView string

const (
	// ViewReceivable folds customer invoices by outstanding amount
	ViewReceivable LedgerView = "receivable"
	// ViewPayable folds vendor bills and expenses by outstanding amount
	ViewPayable LedgerView = "payable"
	// ViewGeneral folds everything by total minus paid
	ViewGeneral LedgerView = "general"
)

func (v LedgerView) IsValid() bool {
	return v == ViewReceivable || v == ViewPayable || v == ViewGeneral
}

// LedgerEntry is a display-ready projection of a monetary record.
// Amounts are already converted into the requested display currency.
// Entries are built fresh on every read and never persisted.
type LedgerEntry struct {
	PartyType   PartyType    `json:"party_type"`
	PartyID     string       `json:"party_id"`
	PartyName   string       `json:"party_name"`
	Reference   string       `json:"reference"`
	JobNumber   string       `json:"job_number,omitempty"`
	Date        time.Time    `json:"date"`
	Status      RecordStatus `json:"status"`
	Currency    string       `json:"currency"`
	Total       float64      `json:"total"`
	Paid        float64      `json:"paid"`
	Outstanding float64      `json:"outstanding"`
	Source      SourceType   `json:"source"`
	Category    string       `json:"category,omitempty"`
}

// BalanceLine is a ledger entry annotated with the running balance.
// The balance is only meaningful within the ordered sequence it was
// computed in.
type BalanceLine struct {
	LedgerEntry
	Balance float64 `json:"balance"`
}

// LedgerStatement is what a ledger view hands to the UI: the annotated
// lines plus the closing balance for summary cards.
type LedgerStatement struct {
	View            LedgerView    `json:"view"`
	DisplayCurrency string        `json:"display_currency"`
	Lines           []BalanceLine `json:"lines"`
	CurrentBalance  float64       `json:"current_balance"`
	GeneratedAt     time.Time     `json:"generated_at"`
}
