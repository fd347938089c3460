package ledger

import (
	"testing"
	"time"

	"freight-backoffice/internal/domain"
)

func TestBuildAgingReportBuckets(t *testing.T) {
	asOf := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	entries := []domain.LedgerEntry{
		entry("FRESH", asOf.AddDate(0, 0, -5), 100, 0, 100),
		entry("MONTH", asOf.AddDate(0, 0, -45), 200, 0, 200),
		entry("OLD", asOf.AddDate(0, 0, -200), 300, 0, 300),
		entry("SETTLED", asOf.AddDate(0, 0, -10), 50, 50, 0),
		entry("FUTURE", asOf.AddDate(0, 0, 3), 80, 0, 80),
	}

	report := BuildAgingReport(entries, domain.ViewReceivable, "USD", asOf)

	if report.Total != 680 {
		t.Fatalf("total: expected 680, got %v", report.Total)
	}
	if report.EntryCount != 4 {
		t.Fatalf("settled entries must not count, got %d", report.EntryCount)
	}
	if report.Buckets[AgingCurrent] != 180 {
		t.Fatalf("current bucket: expected 180, got %v", report.Buckets[AgingCurrent])
	}
	if report.Buckets[Aging60] != 200 {
		t.Fatalf("31-60 bucket: expected 200, got %v", report.Buckets[Aging60])
	}
	if report.Buckets[AgingOver90] != 300 {
		t.Fatalf("over-90 bucket: expected 300, got %v", report.Buckets[AgingOver90])
	}
	if report.OldestDate == nil || !report.OldestDate.Equal(asOf.AddDate(0, 0, -200)) {
		t.Fatalf("oldest date wrong: %v", report.OldestDate)
	}
}

func TestBuildAgingReportEmpty(t *testing.T) {
	report := BuildAgingReport(nil, domain.ViewPayable, "USD", time.Now())
	if report.Total != 0 || report.EntryCount != 0 {
		t.Fatalf("empty input must produce zero report: %+v", report)
	}
	if report.OldestDate != nil {
		t.Fatalf("no entries, no oldest date: %v", report.OldestDate)
	}
}
