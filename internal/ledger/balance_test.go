package ledger

import (
	"testing"
	"time"

	"freight-backoffice/internal/domain"
)

func entry(ref string, date time.Time, total, paid, outstanding float64) domain.LedgerEntry {
	return domain.LedgerEntry{
		Reference:   ref,
		Date:        date,
		Total:       total,
		Paid:        paid,
		Outstanding: outstanding,
	}
}

func TestWithRunningBalanceFold(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("A", day(1), 150, 0, 150),
		entry("B", day(2), 500, 200, 300),
	}

	lines := WithRunningBalance(entries, ContributionForView(domain.ViewReceivable))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Balance != 150 {
		t.Fatalf("first balance: expected 150, got %v", lines[0].Balance)
	}
	if lines[1].Balance != 450 {
		t.Fatalf("second balance: expected 450, got %v", lines[1].Balance)
	}
	if CurrentBalance(lines) != 450 {
		t.Fatalf("current balance: expected 450, got %v", CurrentBalance(lines))
	}
}

func TestWithRunningBalanceEmpty(t *testing.T) {
	lines := WithRunningBalance(nil, ContributionForView(domain.ViewReceivable))
	if len(lines) != 0 {
		t.Fatalf("expected empty output, got %d lines", len(lines))
	}
	if CurrentBalance(lines) != 0 {
		t.Fatalf("empty sequence balance must be 0, got %v", CurrentBalance(lines))
	}
}

func TestGeneralViewContribution(t *testing.T) {
	// General ledger folds total-paid, not outstanding, so an overpaid
	// record pulls the balance down.
	entries := []domain.LedgerEntry{
		entry("A", day(1), 100, 150, 0),
		entry("B", day(2), 200, 0, 200),
	}

	lines := WithRunningBalance(entries, ContributionForView(domain.ViewGeneral))
	if lines[0].Balance != -50 {
		t.Fatalf("overpaid record should contribute -50, got %v", lines[0].Balance)
	}
	if lines[1].Balance != 150 {
		t.Fatalf("final balance: expected 150, got %v", lines[1].Balance)
	}
}

func TestSortByDateStable(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("C", day(9), 1, 0, 1),
		entry("A", day(3), 1, 0, 1),
		entry("B1", day(5), 1, 0, 1),
		entry("B2", day(5), 1, 0, 1),
	}

	SortByDate(entries)

	got := []string{entries[0].Reference, entries[1].Reference, entries[2].Reference, entries[3].Reference}
	want := []string{"A", "B1", "B2", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort order wrong: got %v, want %v", got, want)
		}
	}
}

func TestWithRunningBalanceDeterministic(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("A", day(1), 10, 0, 10),
		entry("B", day(2), 20, 5, 15),
		entry("C", day(3), 30, 30, 0),
	}

	first := WithRunningBalance(entries, ContributionForView(domain.ViewPayable))
	second := WithRunningBalance(entries, ContributionForView(domain.ViewPayable))
	for i := range first {
		if first[i].Balance != second[i].Balance {
			t.Fatalf("accumulation must be deterministic at %d: %v vs %v",
				i, first[i].Balance, second[i].Balance)
		}
	}
}

func TestRunningBalanceIsOrderDependent(t *testing.T) {
	a := entry("A", day(1), 100, 0, 100)
	b := entry("B", day(2), 40, 0, 40)

	forward := WithRunningBalance([]domain.LedgerEntry{a, b}, ContributionForView(domain.ViewReceivable))
	reversed := WithRunningBalance([]domain.LedgerEntry{b, a}, ContributionForView(domain.ViewReceivable))

	if forward[0].Balance == reversed[0].Balance {
		t.Fatal("intermediate balances must depend on order")
	}
	// The closing balance is the same either way.
	if CurrentBalance(forward) != CurrentBalance(reversed) {
		t.Fatalf("closing balances differ: %v vs %v",
			CurrentBalance(forward), CurrentBalance(reversed))
	}
}
