package ledger

import (
	"errors"
	"math"
	"testing"
	"time"

	"freight-backoffice/internal/domain"
	"freight-backoffice/pkg/xerrors"
)

func usdTable() *domain.CurrencyTable {
	return domain.NewCurrencyTable(
		map[string]float64{"USD": 1, "EUR": 2},
		nil, nil,
	)
}

func fp(v float64) *float64 { return &v }

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 0, 0, 0, 0, time.UTC)
}

func invoice(number string, amount, paid *float64, status domain.RecordStatus) *domain.Invoice {
	return &domain.Invoice{
		InvoiceNumber: number,
		PartyType:     domain.PartyTypeCustomer,
		PartyID:       "C1",
		PartyName:     "Acme Trading",
		Date:          day(1),
		Currency:      "USD",
		Amount:        amount,
		AmountPaid:    paid,
		Status:        status,
	}
}

func TestDeriveInvoiceOutstanding(t *testing.T) {
	invoices := []*domain.Invoice{
		invoice("INV-1", fp(1000), fp(400), domain.StatusPartiallyPaid),
	}

	entries, err := DeriveInvoiceEntries(invoices, "USD", usdTable(), DeriveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Total != 1000 || e.Paid != 400 || e.Outstanding != 600 {
		t.Fatalf("wrong amounts: total=%v paid=%v outstanding=%v", e.Total, e.Paid, e.Outstanding)
	}
	if e.Reference != "INV-1" || e.Source != domain.SourceInvoice {
		t.Fatalf("wrong identity: %+v", e)
	}
}

func TestDeriveInvoiceOverpaidClampsToZero(t *testing.T) {
	invoices := []*domain.Invoice{
		invoice("INV-1", fp(100), fp(150), domain.StatusSent),
	}

	entries, err := DeriveInvoiceEntries(invoices, "USD", usdTable(), DeriveOptions{IncludeSettled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Outstanding != 0 {
		t.Fatalf("overpayment must clamp outstanding to 0, got %v", entries[0].Outstanding)
	}
}

func TestDeriveInvoiceNilAmountsAreZero(t *testing.T) {
	invoices := []*domain.Invoice{
		invoice("INV-1", nil, nil, domain.StatusDraft),
	}

	entries, err := DeriveInvoiceEntries(invoices, "USD", usdTable(), DeriveOptions{IncludeSettled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Total != 0 || entries[0].Outstanding != 0 {
		t.Fatalf("nil amounts must derive zeros, got %+v", entries[0])
	}
}

func TestDeriveInvoiceRejectsBadAmounts(t *testing.T) {
	for _, bad := range []*float64{fp(-5), fp(math.NaN()), fp(math.Inf(1))} {
		invoices := []*domain.Invoice{
			invoice("INV-1", bad, nil, domain.StatusSent),
		}
		_, err := DeriveInvoiceEntries(invoices, "USD", usdTable(), DeriveOptions{})
		if !errors.Is(err, xerrors.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %v, got %v", *bad, err)
		}
	}
}

func TestDeriveInvoiceSettlementFilter(t *testing.T) {
	invoices := []*domain.Invoice{
		invoice("OPEN", fp(500), fp(100), domain.StatusPartiallyPaid),
		invoice("PAID", fp(500), fp(500), domain.StatusPaid),
		invoice("CANCELLED", fp(500), nil, domain.StatusCancelled),
		invoice("NEAR-ZERO", fp(100), fp(99.995), domain.StatusSent),
	}

	entries, err := DeriveInvoiceEntries(invoices, "USD", usdTable(), DeriveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Reference != "OPEN" {
		t.Fatalf("expected only OPEN to survive, got %+v", entries)
	}

	all, err := DeriveInvoiceEntries(invoices, "USD", usdTable(), DeriveOptions{IncludeSettled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("IncludeSettled must keep all 4, got %d", len(all))
	}
}

func TestDeriveInvoiceConvertsCurrency(t *testing.T) {
	inv := invoice("INV-EUR", fp(100), fp(50), domain.StatusPartiallyPaid)
	inv.Currency = "EUR"

	entries, err := DeriveInvoiceEntries([]*domain.Invoice{inv}, "USD", usdTable(), DeriveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := entries[0]
	if e.Total != 200 || e.Paid != 100 || e.Outstanding != 100 {
		t.Fatalf("EUR at rate 2 should double: %+v", e)
	}
	if e.Currency != "USD" {
		t.Fatalf("entry must carry display currency, got %s", e.Currency)
	}
}

func TestResolveInvoicePartyFallback(t *testing.T) {
	// Explicit party fields win.
	inv := invoice("INV-1", fp(10), nil, domain.StatusSent)
	entries, _ := DeriveInvoiceEntries([]*domain.Invoice{inv}, "USD", usdTable(), DeriveOptions{})
	if entries[0].PartyID != "C1" || entries[0].PartyName != "Acme Trading" {
		t.Fatalf("explicit party fields should win: %+v", entries[0])
	}

	// Legacy customer fields fill gaps independently.
	inv2 := &domain.Invoice{
		InvoiceNumber: "INV-2",
		PartyName:     "Explicit Name",
		CustomerID:    "LEGACY-ID",
		CustomerName:  "Legacy Name",
		Date:          day(2),
		Currency:      "USD",
		Amount:        fp(10),
		Status:        domain.StatusSent,
	}
	entries, _ = DeriveInvoiceEntries([]*domain.Invoice{inv2}, "USD", usdTable(), DeriveOptions{})
	if entries[0].PartyID != "LEGACY-ID" || entries[0].PartyName != "Explicit Name" {
		t.Fatalf("id and name must resolve independently: %+v", entries[0])
	}
	if entries[0].PartyType != domain.PartyTypeCustomer {
		t.Fatalf("unspecified party type must default to customer, got %s", entries[0].PartyType)
	}

	// Vendor-typed invoices use the vendor legacy fields.
	inv3 := &domain.Invoice{
		InvoiceNumber: "INV-3",
		PartyType:     domain.PartyTypeVendor,
		VendorID:      "V9",
		VendorName:    "Ocean Carrier",
		CustomerID:    "ignored",
		Date:          day(3),
		Currency:      "USD",
		Amount:        fp(10),
		Status:        domain.StatusSent,
	}
	entries, _ = DeriveInvoiceEntries([]*domain.Invoice{inv3}, "USD", usdTable(), DeriveOptions{})
	if entries[0].PartyID != "V9" || entries[0].PartyName != "Ocean Carrier" {
		t.Fatalf("vendor invoices must use vendor legacy fields: %+v", entries[0])
	}
}

func TestDeriveExpenseBifurcation(t *testing.T) {
	expenses := []*domain.Expense{
		{ID: 1, Category: domain.ExpenseSalaries, Date: day(5), Currency: "USD", Amount: fp(300), Status: domain.StatusPaid},
		{ID: 2, Category: domain.ExpenseOffice, Date: day(6), Currency: "USD", Amount: fp(200), Status: domain.StatusPending},
	}

	entries, err := DeriveExpenseEntries(expenses, "USD", usdTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expenses map 1:1, got %d entries", len(entries))
	}

	paid := entries[0]
	if paid.Paid != 300 || paid.Outstanding != 0 {
		t.Fatalf("paid expense: %+v", paid)
	}
	open := entries[1]
	if open.Paid != 0 || open.Outstanding != 200 {
		t.Fatalf("pending expense: %+v", open)
	}
	if entries[0].Reference != "EXP-2026-03-05" {
		t.Fatalf("reference should be EXP-<date>, got %s", entries[0].Reference)
	}
	if entries[0].PartyName != domain.ExpenseCategoryLabels[domain.ExpenseSalaries] {
		t.Fatalf("party name should carry the category label, got %s", entries[0].PartyName)
	}
}

func TestDeriveAndAccumulateScenario(t *testing.T) {
	invoices := []*domain.Invoice{
		invoice("INV-1", fp(100), fp(100), domain.StatusPaid),
		invoice("INV-2", fp(200), fp(50), domain.StatusSent),
		invoice("INV-3", fp(300), fp(0), domain.StatusOverdue),
	}

	entries, err := DeriveInvoiceEntries(invoices, "USD", usdTable(), DeriveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("paid invoice must drop out, got %d entries", len(entries))
	}

	SortByDate(entries)
	lines := WithRunningBalance(entries, ContributionForView(domain.ViewReceivable))
	if lines[0].Balance != 150 || lines[1].Balance != 450 {
		t.Fatalf("running balances: expected [150 450], got [%v %v]",
			lines[0].Balance, lines[1].Balance)
	}
	if CurrentBalance(lines) != 450 {
		t.Fatalf("current balance: expected 450, got %v", CurrentBalance(lines))
	}
}

func TestDeriveVendorBillReferenceFallback(t *testing.T) {
	bills := []*domain.VendorBill{
		{ID: 1, BillNumber: "BILL-7", VendorID: "V1", VendorName: "Port Agent", Date: day(7),
			Currency: "USD", Amount: fp(150), Status: domain.StatusPending, JobNumber: "JOB-1"},
		{ID: 2, VendorName: "Customs Broker", Date: day(8),
			Currency: "USD", Amount: fp(80), Status: domain.StatusPaid, JobNumber: "JOB-2"},
	}

	entries, err := DeriveVendorBillEntries(bills, "USD", usdTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Reference != "BILL-7" {
		t.Fatalf("expected bill number reference, got %s", entries[0].Reference)
	}
	if entries[1].Reference != "JOB-2" {
		t.Fatalf("missing bill number should fall back to job number, got %s", entries[1].Reference)
	}
	if entries[0].Outstanding != 150 || entries[1].Outstanding != 0 {
		t.Fatalf("bill bifurcation wrong: %+v %+v", entries[0], entries[1])
	}
}
