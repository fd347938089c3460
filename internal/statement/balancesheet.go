package statement

import (
	"time"

	"freight-backoffice/internal/domain"
)

var bsBuckets = map[Bucket]bool{
	BucketCash:             true,
	BucketReceivable:       true,
	BucketPrepaid:          true,
	BucketEquipment:        true,
	BucketVehicles:         true,
	BucketDepreciation:     true,
	BucketOtherAssets:      true,
	BucketPayable:          true,
	BucketAccrued:          true,
	BucketDutiesTaxes:      true,
	BucketLongTerm:         true,
	BucketCapital:          true,
	BucketRetainedEarnings: true,
}

// bsRouter keys on the 1xxx/2xxx/3xxx code ranges. Unlisted asset
// codes land in other assets, unlisted liabilities in long-term, and
// unlisted equity in retained earnings.
var bsRouter = MustRouter(bsBuckets,
	map[string]Bucket{
		"1000": BucketCash,
		"1100": BucketReceivable,
		"1200": BucketPrepaid,
		"1500": BucketEquipment,
		"1510": BucketVehicles,
		"1590": BucketDepreciation,
		"2000": BucketPayable,
		"2100": BucketAccrued,
		"2200": BucketDutiesTaxes,
		"3000": BucketCapital,
	},
	[]PrefixRule{
		{Prefix: "1", Bucket: BucketOtherAssets},
		{Prefix: "2", Bucket: BucketLongTerm},
		{Prefix: "3", Bucket: BucketRetainedEarnings},
	},
)

// BuildBalanceSheet folds chart-of-accounts snapshots into a balance
// sheet as of a date. Each account's stored balance is taken directly
// rather than re-summing postings. Pure and deterministic; totals hold
// by construction.
func BuildBalanceSheet(accounts []*domain.Account, asOf time.Time) *domain.BalanceSheetStatement {
	bs := &domain.BalanceSheetStatement{AsOf: asOf}

	for _, a := range accounts {
		bucket, ok := bsRouter.Route(a.Code)
		if !ok {
			continue // revenue/expense codes don't belong on the balance sheet
		}

		switch bucket {
		case BucketCash:
			bs.CurrentAssets.Cash += a.Balance
		case BucketReceivable:
			bs.CurrentAssets.AccountsReceivable += a.Balance
		case BucketPrepaid:
			bs.CurrentAssets.Prepaid += a.Balance
		case BucketEquipment:
			bs.FixedAssets.Equipment += a.Balance
		case BucketVehicles:
			bs.FixedAssets.Vehicles += a.Balance
		case BucketDepreciation:
			bs.FixedAssets.Depreciation += a.Balance
		case BucketOtherAssets:
			bs.OtherAssets += a.Balance
		case BucketPayable:
			bs.CurrentLiabilities.AccountsPayable += a.Balance
		case BucketAccrued:
			bs.CurrentLiabilities.Accrued += a.Balance
		case BucketDutiesTaxes:
			bs.CurrentLiabilities.DutiesTaxes += a.Balance
		case BucketLongTerm:
			bs.LongTermLiabilities += a.Balance
		case BucketCapital:
			bs.Equity.Capital += a.Balance
		case BucketRetainedEarnings:
			bs.Equity.RetainedEarnings += a.Balance
		}
	}

	bs.CurrentAssets.Total = bs.CurrentAssets.Cash +
		bs.CurrentAssets.AccountsReceivable +
		bs.CurrentAssets.Prepaid
	bs.FixedAssets.Net = bs.FixedAssets.Equipment +
		bs.FixedAssets.Vehicles -
		bs.FixedAssets.Depreciation
	bs.TotalAssets = bs.CurrentAssets.Total + bs.FixedAssets.Net + bs.OtherAssets

	bs.CurrentLiabilities.Total = bs.CurrentLiabilities.AccountsPayable +
		bs.CurrentLiabilities.Accrued +
		bs.CurrentLiabilities.DutiesTaxes
	bs.TotalLiabilities = bs.CurrentLiabilities.Total + bs.LongTermLiabilities

	bs.Equity.Total = bs.Equity.Capital + bs.Equity.RetainedEarnings
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities + bs.Equity.Total

	return bs
}
