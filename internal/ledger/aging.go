package ledger

import (
	"time"

	"freight-backoffice/internal/domain"
)

// AgingBucket labels how long an entry has been outstanding.
type AgingBucket string

const (
	AgingCurrent AgingBucket = "current" // up to 30 days old
	Aging60      AgingBucket = "31_60"
	Aging90      AgingBucket = "61_90"
	AgingOver90  AgingBucket = "over_90"
)

// AgingReport breaks open balances down by document age, the standard
// collections view for receivables and payables.
type AgingReport struct {
	View        domain.LedgerView       `json:"view"`
	Currency    string                  `json:"currency"`
	AsOf        time.Time               `json:"as_of"`
	Buckets     map[AgingBucket]float64 `json:"buckets"`
	Total       float64                 `json:"total"`
	EntryCount  int                     `json:"entry_count"`
	OldestDate  *time.Time              `json:"oldest_date,omitempty"`
}

func bucketFor(age time.Duration) AgingBucket {
	days := int(age.Hours() / 24)
	switch {
	case days <= 30:
		return AgingCurrent
	case days <= 60:
		return Aging60
	case days <= 90:
		return Aging90
	default:
		return AgingOver90
	}
}

// BuildAgingReport distributes outstanding amounts into age buckets
// relative to asOf. Entries dated in the future count as current.
func BuildAgingReport(
	entries []domain.LedgerEntry,
	view domain.LedgerView,
	currency string,
	asOf time.Time,
) *AgingReport {
	report := &AgingReport{
		View:     view,
		Currency: currency,
		AsOf:     asOf,
		Buckets: map[AgingBucket]float64{
			AgingCurrent: 0,
			Aging60:      0,
			Aging90:      0,
			AgingOver90:  0,
		},
	}

	for _, e := range entries {
		if e.Outstanding <= 0 {
			continue
		}

		age := asOf.Sub(e.Date)
		if age < 0 {
			age = 0
		}

		report.Buckets[bucketFor(age)] += e.Outstanding
		report.Total += e.Outstanding
		report.EntryCount++

		if report.OldestDate == nil || e.Date.Before(*report.OldestDate) {
			d := e.Date
			report.OldestDate = &d
		}
	}

	return report
}
