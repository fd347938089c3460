package domain

import "time"

// AccountType classifies a general-ledger account by its code range
type AccountType string

const (
	AccountAsset       AccountType = "asset"        // 1xxx
	AccountContraAsset AccountType = "contra_asset" // 1xxx, offsets an asset
	AccountLiability   AccountType = "liability"    // 2xxx
	AccountEquity      AccountType = "equity"       // 3xxx
	AccountRevenue     AccountType = "revenue"      // 4xxx
	AccountCOS         AccountType = "cost_of_services"
	AccountExpense     AccountType = "expense"
)

// IsDebitNormal reports whether the account balance grows with
// debits. Liability, equity, revenue and contra-asset accounts grow
// with credits, so accumulated depreciation stores a positive balance.
func (t AccountType) IsDebitNormal() bool {
	return t == AccountAsset || t == AccountCOS || t == AccountExpense
}

// Account is a chart-of-accounts entry with its stored balance.
type Account struct {
	ID        int64       `json:"id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Balance   float64     `json:"balance"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`
}

// GLEntry is one general-ledger posting against an account code.
type GLEntry struct {
	ID          int64     `json:"id"`
	AccountCode string    `json:"account_code"`
	Date        time.Time `json:"date"`
	Debit       float64   `json:"debit"`
	Credit      float64   `json:"credit"`
	Memo        string    `json:"memo,omitempty"`
	JobNumber   string    `json:"job_number,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// GLEntryFilter narrows general-ledger queries
type GLEntryFilter struct {
	AccountCode *string
	CodePrefix  *string
	StartDate   *time.Time
	EndDate     *time.Time
	Limit       int
	Offset      int
}

// DefaultChartOfAccounts is seeded at startup when the accounts table
// is empty.
var DefaultChartOfAccounts = []*Account{
	// --- Assets ---
	{Code: "1000", Name: "Cash & Bank", Type: AccountAsset, IsActive: true},
	{Code: "1100", Name: "Accounts Receivable", Type: AccountAsset, IsActive: true},
	{Code: "1200", Name: "Prepaid Expenses", Type: AccountAsset, IsActive: true},
	{Code: "1500", Name: "Office Equipment", Type: AccountAsset, IsActive: true},
	{Code: "1510", Name: "Vehicles", Type: AccountAsset, IsActive: true},
	{Code: "1590", Name: "Accumulated Depreciation", Type: AccountContraAsset, IsActive: true},
	{Code: "1900", Name: "Deposits & Other Assets", Type: AccountAsset, IsActive: true},

	// --- Liabilities ---
	{Code: "2000", Name: "Accounts Payable", Type: AccountLiability, IsActive: true},
	{Code: "2100", Name: "Accrued Liabilities", Type: AccountLiability, IsActive: true},
	{Code: "2200", Name: "Duties & Taxes Payable", Type: AccountLiability, IsActive: true},
	{Code: "2500", Name: "Long-Term Loans", Type: AccountLiability, IsActive: true},

	// --- Equity ---
	{Code: "3000", Name: "Owner's Capital", Type: AccountEquity, IsActive: true},
	{Code: "3100", Name: "Retained Earnings", Type: AccountEquity, IsActive: true},

	// --- Revenue ---
	{Code: "4000", Name: "Service Revenue", Type: AccountRevenue, IsActive: true},
	{Code: "4100", Name: "Freight Revenue", Type: AccountRevenue, IsActive: true},
	{Code: "4200", Name: "Customs Clearance Revenue", Type: AccountRevenue, IsActive: true},

	// --- Cost of services ---
	{Code: "5000", Name: "Carrier Charges", Type: AccountCOS, IsActive: true},
	{Code: "5100", Name: "Customs & Duty", Type: AccountCOS, IsActive: true},
	{Code: "5200", Name: "Port & Handling", Type: AccountCOS, IsActive: true},

	// --- Operating expenses ---
	{Code: "6000", Name: "Salaries & Wages", Type: AccountExpense, IsActive: true},
	{Code: "6100", Name: "Rent & Utilities", Type: AccountExpense, IsActive: true},
	{Code: "6200", Name: "Office & Admin", Type: AccountExpense, IsActive: true},

	// --- Other expenses ---
	{Code: "7000", Name: "Interest Expense", Type: AccountExpense, IsActive: true},
	{Code: "7100", Name: "Bank Charges", Type: AccountExpense, IsActive: true},
}
