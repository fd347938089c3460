package statement

import (
	"fmt"
	"strings"

	"freight-backoffice/pkg/xerrors"
)

// Bucket is a named aggregation target on a statement. Account codes
// route into exactly one bucket.
type Bucket string

// Profit & loss buckets
const (
	BucketServiceRevenue Bucket = "service_revenue"
	BucketFreightRevenue Bucket = "freight_revenue"
	BucketOtherRevenue   Bucket = "other_revenue"
	BucketCarrierCharges Bucket = "carrier_charges"
	BucketCustomsDuty    Bucket = "customs_duty"
	BucketPortHandling   Bucket = "port_handling"
	BucketSalaries       Bucket = "salaries"
	BucketRentUtilities  Bucket = "rent_utilities"
	BucketOfficeAdmin    Bucket = "office_admin"
	BucketOtherExpenses  Bucket = "other_expenses"
)

// Balance sheet buckets
const (
	BucketCash             Bucket = "cash"
	BucketReceivable       Bucket = "accounts_receivable"
	BucketPrepaid          Bucket = "prepaid"
	BucketEquipment        Bucket = "equipment"
	BucketVehicles         Bucket = "vehicles"
	BucketDepreciation     Bucket = "accumulated_depreciation"
	BucketOtherAssets      Bucket = "other_assets"
	BucketPayable          Bucket = "accounts_payable"
	BucketAccrued          Bucket = "accrued"
	BucketDutiesTaxes      Bucket = "duties_taxes"
	BucketLongTerm         Bucket = "long_term_liabilities"
	BucketCapital          Bucket = "capital"
	BucketRetainedEarnings Bucket = "retained_earnings"
)

// PrefixRule routes any code starting with Prefix that has no exact
// match into Bucket.
type PrefixRule struct {
	Prefix string
	Bucket Bucket
}

// Router maps account codes to buckets: exact matches win, then the
// prefix rules are tried in order. Construction validates the mapping
// so a bad chart cannot silently misroute.
type Router struct {
	exact    map[string]Bucket
	prefixes []PrefixRule
}

// NewRouter builds a router and validates it against the set of
// buckets the statement knows how to fold.
func NewRouter(known map[Bucket]bool, exact map[string]Bucket, prefixes []PrefixRule) (*Router, error) {
	for code, bucket := range exact {
		if !known[bucket] {
			return nil, fmt.Errorf("code %s: %w: %s", code, xerrors.ErrUnknownBucket, bucket)
		}
	}

	seen := make(map[string]bool, len(prefixes))
	for _, rule := range prefixes {
		if !known[rule.Bucket] {
			return nil, fmt.Errorf("prefix %s: %w: %s", rule.Prefix, xerrors.ErrUnknownBucket, rule.Bucket)
		}
		if seen[rule.Prefix] {
			return nil, fmt.Errorf("prefix %s: %w", rule.Prefix, xerrors.ErrDuplicateRoute)
		}
		seen[rule.Prefix] = true
	}

	return &Router{exact: exact, prefixes: prefixes}, nil
}

// Route returns the bucket for an account code, or false when no rule
// claims it.
func (r *Router) Route(code string) (Bucket, bool) {
	if bucket, ok := r.exact[code]; ok {
		return bucket, true
	}
	for _, rule := range r.prefixes {
		if strings.HasPrefix(code, rule.Prefix) {
			return rule.Bucket, true
		}
	}
	return "", false
}

// MustRouter panics on an invalid mapping; used only for the static
// package-level routers, which are fixed at compile time.
func MustRouter(known map[Bucket]bool, exact map[string]Bucket, prefixes []PrefixRule) *Router {
	r, err := NewRouter(known, exact, prefixes)
	if err != nil {
		panic(err)
	}
	return r
}
