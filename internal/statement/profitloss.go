package statement

import (
	"time"

	"freight-backoffice/internal/domain"
)

var plBuckets = map[Bucket]bool{
	BucketServiceRevenue: true,
	BucketFreightRevenue: true,
	BucketOtherRevenue:   true,
	BucketCarrierCharges: true,
	BucketCustomsDuty:    true,
	BucketPortHandling:   true,
	BucketSalaries:       true,
	BucketRentUtilities:  true,
	BucketOfficeAdmin:    true,
	BucketOtherExpenses:  true,
}

// plRouter is the fixed account-code mapping for the P&L. Leaf codes
// match exactly; unlisted 4xxx/5xxx/6xxx/7xxx codes fall through to
// the catch-all of their range.
var plRouter = MustRouter(plBuckets,
	map[string]Bucket{
		"4000": BucketServiceRevenue,
		"4100": BucketFreightRevenue,
		"5000": BucketCarrierCharges,
		"5100": BucketCustomsDuty,
		"5200": BucketPortHandling,
		"6000": BucketSalaries,
		"6100": BucketRentUtilities,
		"6200": BucketOfficeAdmin,
	},
	[]PrefixRule{
		{Prefix: "4", Bucket: BucketOtherRevenue},
		{Prefix: "5", Bucket: BucketCarrierCharges},
		{Prefix: "6", Bucket: BucketOfficeAdmin},
		{Prefix: "7", Bucket: BucketOtherExpenses},
	},
)

// BuildProfitLoss folds general-ledger entries into a P&L statement.
// Revenue buckets accumulate credit minus debit, expense buckets debit
// minus credit. Derived totals are computed in a fixed dependency
// order; margin percentages guard against zero revenue. Pure and
// deterministic over its inputs.
func BuildProfitLoss(entries []*domain.GLEntry, from, to time.Time) *domain.ProfitLossStatement {
	pl := &domain.ProfitLossStatement{
		PeriodStart: from,
		PeriodEnd:   to,
	}

	for _, e := range entries {
		bucket, ok := plRouter.Route(e.AccountCode)
		if !ok {
			continue // balance-sheet codes don't belong on the P&L
		}

		credit := e.Credit - e.Debit
		debit := e.Debit - e.Credit

		switch bucket {
		case BucketServiceRevenue:
			pl.ServiceRevenue += credit
		case BucketFreightRevenue:
			pl.FreightRevenue += credit
		case BucketOtherRevenue:
			pl.OtherRevenue += credit
		case BucketCarrierCharges:
			pl.CarrierCharges += debit
		case BucketCustomsDuty:
			pl.CustomsDuty += debit
		case BucketPortHandling:
			pl.PortHandling += debit
		case BucketSalaries:
			pl.Salaries += debit
		case BucketRentUtilities:
			pl.RentUtilities += debit
		case BucketOfficeAdmin:
			pl.OfficeAdmin += debit
		case BucketOtherExpenses:
			pl.OtherExpenses += debit
		}
	}

	// Derived totals, in dependency order.
	pl.TotalRevenue = pl.ServiceRevenue + pl.FreightRevenue + pl.OtherRevenue
	pl.TotalCOS = pl.CarrierCharges + pl.CustomsDuty + pl.PortHandling
	pl.GrossProfit = pl.TotalRevenue - pl.TotalCOS
	if pl.TotalRevenue != 0 {
		pl.GrossMargin = pl.GrossProfit / pl.TotalRevenue * 100
	}
	pl.TotalOperating = pl.Salaries + pl.RentUtilities + pl.OfficeAdmin
	pl.OperatingIncome = pl.GrossProfit - pl.TotalOperating
	pl.NetIncome = pl.OperatingIncome - pl.OtherExpenses
	if pl.TotalRevenue != 0 {
		pl.NetMargin = pl.NetIncome / pl.TotalRevenue * 100
	}

	return pl
}
