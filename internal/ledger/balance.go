package ledger

import (
	"sort"

	"freight-backoffice/internal/domain"
)

// Contribution computes how much a single entry moves the running
// balance. The function is chosen per ledger view.
type Contribution func(domain.LedgerEntry) float64

// ContributionForView returns the contribution function for a view:
// outstanding-only for receivable/payable ledgers, total minus paid
// for the mixed general ledger.
func ContributionForView(view domain.LedgerView) Contribution {
	if view == domain.ViewGeneral {
		return func(e domain.LedgerEntry) float64 { return e.Total - e.Paid }
	}
	return func(e domain.LedgerEntry) float64 { return e.Outstanding }
}

// SortByDate orders entries ascending by document date, keeping the
// input order for equal dates. Running balances are only meaningful
// over a chronological sequence, so ledger views sort before
// accumulating rather than trusting store order.
func SortByDate(entries []domain.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

// WithRunningBalance annotates an ordered sequence with a cumulative
// balance: balance[0] = contribution[0], balance[i] = balance[i-1] +
// contribution[i]. A single left-to-right fold; input order is
// preserved. Empty input yields an empty sequence.
func WithRunningBalance(entries []domain.LedgerEntry, contribution Contribution) []domain.BalanceLine {
	lines := make([]domain.BalanceLine, 0, len(entries))

	var balance float64
	for _, entry := range entries {
		balance += contribution(entry)
		lines = append(lines, domain.BalanceLine{LedgerEntry: entry, Balance: balance})
	}

	return lines
}

// CurrentBalance returns the closing balance of an annotated
// sequence, 0 for an empty one.
func CurrentBalance(lines []domain.BalanceLine) float64 {
	if len(lines) == 0 {
		return 0
	}
	return lines[len(lines)-1].Balance
}
