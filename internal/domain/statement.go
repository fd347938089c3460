package domain

import "time"

// ProfitLossStatement is the fully derived P&L for a period. All
// totals are computed by the statement builder in a fixed order;
// nothing here is persisted.
type ProfitLossStatement struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	ServiceRevenue   float64 `json:"service_revenue"`
	FreightRevenue   float64 `json:"freight_revenue"`
	OtherRevenue     float64 `json:"other_revenue"`
	TotalRevenue     float64 `json:"total_revenue"`

	CarrierCharges  float64 `json:"carrier_charges"`
	CustomsDuty     float64 `json:"customs_duty"`
	PortHandling    float64 `json:"port_handling"`
	TotalCOS        float64 `json:"total_cost_of_services"`

	GrossProfit float64 `json:"gross_profit"`
	GrossMargin float64 `json:"gross_margin"` // percent, 0 when revenue is 0

	Salaries          float64 `json:"salaries"`
	RentUtilities     float64 `json:"rent_utilities"`
	OfficeAdmin       float64 `json:"office_admin"`
	TotalOperating    float64 `json:"total_operating_expenses"`

	OperatingIncome float64 `json:"operating_income"`

	OtherExpenses float64 `json:"other_expenses"`

	NetIncome float64 `json:"net_income"`
	NetMargin float64 `json:"net_margin"` // percent, 0 when revenue is 0
}

// CurrentAssets groups the liquid side of the balance sheet
type CurrentAssets struct {
	Cash               float64 `json:"cash"`
	AccountsReceivable float64 `json:"accounts_receivable"`
	Prepaid            float64 `json:"prepaid"`
	Total              float64 `json:"total"`
}

// FixedAssets nets equipment against accumulated depreciation
type FixedAssets struct {
	Equipment    float64 `json:"equipment"`
	Vehicles     float64 `json:"vehicles"`
	Depreciation float64 `json:"accumulated_depreciation"`
	Net          float64 `json:"net"`
}

// CurrentLiabilities groups short-term obligations
type CurrentLiabilities struct {
	AccountsPayable float64 `json:"accounts_payable"`
	Accrued         float64 `json:"accrued"`
	DutiesTaxes     float64 `json:"duties_taxes"`
	Total           float64 `json:"total"`
}

// Equity groups capital and retained earnings
type Equity struct {
	Capital          float64 `json:"capital"`
	RetainedEarnings float64 `json:"retained_earnings"`
	Total            float64 `json:"total"`
}

// BalanceSheetStatement is the fully derived balance sheet as of a
// date. Invariants by construction:
//
//	TotalAssets == CurrentAssets.Total + FixedAssets.Net + OtherAssets
//	TotalLiabilitiesAndEquity == TotalLiabilities + Equity.Total
type BalanceSheetStatement struct {
	AsOf time.Time `json:"as_of"`

	CurrentAssets CurrentAssets `json:"current_assets"`
	FixedAssets   FixedAssets   `json:"fixed_assets"`
	OtherAssets   float64       `json:"other_assets"`
	TotalAssets   float64       `json:"total_assets"`

	CurrentLiabilities CurrentLiabilities `json:"current_liabilities"`
	LongTermLiabilities float64           `json:"long_term_liabilities"`
	TotalLiabilities    float64           `json:"total_liabilities"`

	Equity Equity `json:"equity"`

	TotalLiabilitiesAndEquity float64 `json:"total_liabilities_and_equity"`
}
