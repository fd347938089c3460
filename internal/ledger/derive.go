package ledger

import (
	"fmt"
	"math"

	"freight-backoffice/internal/domain"
	"freight-backoffice/pkg/xerrors"
)

// DefaultEpsilon is the outstanding threshold below which a record
// counts as settled.
const DefaultEpsilon = 0.01

// DeriveOptions controls settlement filtering on invoice derivation.
type DeriveOptions struct {
	// IncludeSettled keeps paid/cancelled/near-zero records in the
	// output instead of dropping them.
	IncludeSettled bool
	// Epsilon overrides DefaultEpsilon when > 0.
	Epsilon float64
}

func (o DeriveOptions) epsilon() float64 {
	if o.Epsilon > 0 {
		return o.Epsilon
	}
	return DefaultEpsilon
}

// amountValue validates an optional monetary field. A nil amount is
// an absent value and contributes zero; NaN, infinities and negative
// values are data-entry errors and are rejected so they cannot
// silently become zero contributions.
func amountValue(v *float64) (float64, error) {
	if v == nil {
		return 0, nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, xerrors.ErrInvalidAmount
	}
	if *v < 0 {
		return 0, xerrors.ErrInvalidAmount
	}
	return *v, nil
}

// settled reports whether a record no longer belongs on an open
// ledger: closed by status, or outstanding at or under epsilon.
func settled(status domain.RecordStatus, outstanding, epsilon float64) bool {
	if status == domain.StatusPaid || status == domain.StatusCancelled {
		return true
	}
	return outstanding <= epsilon
}

// DeriveInvoiceEntries projects invoice records into ledger entries in
// the display currency. Settled records are filtered out unless
// opts.IncludeSettled is set. Pure; the input slice is not modified.
func DeriveInvoiceEntries(
	invoices []*domain.Invoice,
	displayCurrency string,
	table *domain.CurrencyTable,
	opts DeriveOptions,
) ([]domain.LedgerEntry, error) {
	epsilon := opts.epsilon()

	entries := make([]domain.LedgerEntry, 0, len(invoices))
	for _, inv := range invoices {
		amount, err := amountValue(inv.Amount)
		if err != nil {
			return nil, fmt.Errorf("invoice %s amount: %w", inv.InvoiceNumber, err)
		}
		paid, err := amountValue(inv.AmountPaid)
		if err != nil {
			return nil, fmt.Errorf("invoice %s amount_paid: %w", inv.InvoiceNumber, err)
		}

		total := table.Convert(amount, inv.Currency, displayCurrency)
		paidConverted := table.Convert(paid, inv.Currency, displayCurrency)
		outstanding := math.Max(total-paidConverted, 0)

		if !opts.IncludeSettled && settled(inv.Status, outstanding, epsilon) {
			continue
		}

		party := resolveInvoiceParty(inv)
		entries = append(entries, domain.LedgerEntry{
			PartyType:   party.Type,
			PartyID:     party.ID,
			PartyName:   party.Name,
			Reference:   inv.InvoiceNumber,
			JobNumber:   inv.JobNumber,
			Date:        inv.Date,
			Status:      inv.Status,
			Currency:    displayCurrency,
			Total:       total,
			Paid:        paidConverted,
			Outstanding: outstanding,
			Source:      domain.SourceInvoice,
		})
	}

	return entries, nil
}

// DeriveExpenseEntries maps every expense 1:1 to a ledger entry, no
// filtering. Status paid means fully settled; anything else is fully
// outstanding. The reference label is synthesized as EXP-<date>.
func DeriveExpenseEntries(
	expenses []*domain.Expense,
	displayCurrency string,
	table *domain.CurrencyTable,
) ([]domain.LedgerEntry, error) {
	entries := make([]domain.LedgerEntry, 0, len(expenses))
	for _, exp := range expenses {
		amount, err := amountValue(exp.Amount)
		if err != nil {
			return nil, fmt.Errorf("expense %d amount: %w", exp.ID, err)
		}

		total := table.Convert(amount, exp.Currency, displayCurrency)

		var paid, outstanding float64
		if exp.Status == domain.StatusPaid {
			paid = total
		} else {
			outstanding = total
		}

		partyName := domain.ExpenseCategoryLabels[exp.Category]
		entries = append(entries, domain.LedgerEntry{
			PartyType:   domain.PartyTypeVendor,
			PartyName:   partyName,
			Reference:   "EXP-" + exp.Date.Format("2006-01-02"),
			JobNumber:   exp.JobNumber,
			Date:        exp.Date,
			Status:      exp.Status,
			Currency:    displayCurrency,
			Total:       total,
			Paid:        paid,
			Outstanding: outstanding,
			Source:      domain.SourceExpense,
			Category:    string(exp.Category),
		})
	}

	return entries, nil
}

// DeriveVendorBillEntries maps vendor bills 1:1 with the same
// paid/outstanding bifurcation as expenses. The reference falls back
// from bill number to job number.
func DeriveVendorBillEntries(
	bills []*domain.VendorBill,
	displayCurrency string,
	table *domain.CurrencyTable,
) ([]domain.LedgerEntry, error) {
	entries := make([]domain.LedgerEntry, 0, len(bills))
	for _, bill := range bills {
		amount, err := amountValue(bill.Amount)
		if err != nil {
			return nil, fmt.Errorf("vendor bill %s amount: %w", bill.BillNumber, err)
		}

		total := table.Convert(amount, bill.Currency, displayCurrency)

		var paid, outstanding float64
		if bill.Status == domain.StatusPaid {
			paid = total
		} else {
			outstanding = total
		}

		reference := bill.BillNumber
		if reference == "" {
			reference = bill.JobNumber
		}

		entries = append(entries, domain.LedgerEntry{
			PartyType:   domain.PartyTypeVendor,
			PartyID:     bill.VendorID,
			PartyName:   bill.VendorName,
			Reference:   reference,
			JobNumber:   bill.JobNumber,
			Date:        bill.Date,
			Status:      bill.Status,
			Currency:    displayCurrency,
			Total:       total,
			Paid:        paid,
			Outstanding: outstanding,
			Source:      domain.SourceVendorBill,
		})
	}

	return entries, nil
}
