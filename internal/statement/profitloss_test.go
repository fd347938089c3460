package statement

import (
	"testing"
	"time"

	"freight-backoffice/internal/domain"
)

func glEntry(code string, debit, credit float64) *domain.GLEntry {
	return &domain.GLEntry{AccountCode: code, Debit: debit, Credit: credit}
}

func period() (time.Time, time.Time) {
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func TestBuildProfitLoss(t *testing.T) {
	from, to := period()

	entries := []*domain.GLEntry{
		glEntry("4000", 0, 10000), // service revenue
		glEntry("4100", 0, 5000),  // freight revenue
		glEntry("4200", 0, 1000),  // customs rev -> other revenue via prefix
		glEntry("5000", 6000, 0),  // carrier charges
		glEntry("5100", 1000, 0),  // customs & duty
		glEntry("6000", 2000, 0),  // salaries
		glEntry("7100", 500, 0),   // bank charges -> other expenses
		glEntry("1000", 3000, 0),  // cash, must be ignored on the P&L
	}

	pl := BuildProfitLoss(entries, from, to)

	if pl.TotalRevenue != 16000 {
		t.Fatalf("total revenue: expected 16000, got %v", pl.TotalRevenue)
	}
	if pl.OtherRevenue != 1000 {
		t.Fatalf("4200 should route to other revenue, got %v", pl.OtherRevenue)
	}
	if pl.TotalCOS != 7000 {
		t.Fatalf("total COS: expected 7000, got %v", pl.TotalCOS)
	}
	if pl.GrossProfit != 9000 {
		t.Fatalf("gross profit: expected 9000, got %v", pl.GrossProfit)
	}
	if pl.TotalOperating != 2000 {
		t.Fatalf("operating: expected 2000, got %v", pl.TotalOperating)
	}
	if pl.OperatingIncome != 7000 {
		t.Fatalf("operating income: expected 7000, got %v", pl.OperatingIncome)
	}
	if pl.NetIncome != 6500 {
		t.Fatalf("net income: expected 6500, got %v", pl.NetIncome)
	}
	if pl.GrossMargin != 56.25 {
		t.Fatalf("gross margin: expected 56.25, got %v", pl.GrossMargin)
	}
}

func TestBuildProfitLossRefundsReduceRevenue(t *testing.T) {
	from, to := period()

	entries := []*domain.GLEntry{
		glEntry("4000", 0, 1000),
		glEntry("4000", 200, 0), // refund posted as a debit
	}

	pl := BuildProfitLoss(entries, from, to)
	if pl.ServiceRevenue != 800 {
		t.Fatalf("debits must net against revenue, got %v", pl.ServiceRevenue)
	}
}

func TestBuildProfitLossZeroRevenueMargins(t *testing.T) {
	from, to := period()

	pl := BuildProfitLoss([]*domain.GLEntry{glEntry("6000", 2000, 0)}, from, to)
	if pl.GrossMargin != 0 || pl.NetMargin != 0 {
		t.Fatalf("margins must stay 0 without revenue: gross=%v net=%v", pl.GrossMargin, pl.NetMargin)
	}
	if pl.NetIncome != -2000 {
		t.Fatalf("net income: expected -2000, got %v", pl.NetIncome)
	}
}

func TestBuildProfitLossEmpty(t *testing.T) {
	from, to := period()

	pl := BuildProfitLoss(nil, from, to)
	if pl.TotalRevenue != 0 || pl.NetIncome != 0 || pl.NetMargin != 0 {
		t.Fatalf("empty ledger must produce zero statement: %+v", pl)
	}
	if !pl.PeriodStart.Equal(from) || !pl.PeriodEnd.Equal(to) {
		t.Fatalf("period not carried: %v %v", pl.PeriodStart, pl.PeriodEnd)
	}
}
