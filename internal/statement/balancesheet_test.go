package statement

import (
	"testing"
	"time"

	"freight-backoffice/internal/domain"
)

func account(code string, balance float64) *domain.Account {
	return &domain.Account{Code: code, Balance: balance, IsActive: true}
}

func TestBuildBalanceSheet(t *testing.T) {
	asOf := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	accounts := []*domain.Account{
		account("1000", 50000), // cash
		account("1100", 20000), // receivable
		account("1200", 3000),  // prepaid
		account("1500", 10000), // equipment
		account("1510", 25000), // vehicles
		account("1590", 5000),  // accumulated depreciation
		account("1900", 2000),  // other assets via prefix
		account("2000", 15000), // payable
		account("2100", 4000),  // accrued
		account("2500", 20000), // long-term via prefix
		account("3000", 40000), // capital
		account("3100", 26000), // retained earnings via prefix
		account("4000", 99999), // revenue code, ignored here
	}

	bs := BuildBalanceSheet(accounts, asOf)

	if bs.CurrentAssets.Total != 73000 {
		t.Fatalf("current assets: expected 73000, got %v", bs.CurrentAssets.Total)
	}
	if bs.FixedAssets.Net != 30000 {
		t.Fatalf("fixed assets net: expected 30000, got %v", bs.FixedAssets.Net)
	}
	if bs.TotalAssets != 105000 {
		t.Fatalf("total assets: expected 105000, got %v", bs.TotalAssets)
	}
	if bs.TotalLiabilities != 39000 {
		t.Fatalf("total liabilities: expected 39000, got %v", bs.TotalLiabilities)
	}
	if bs.Equity.Total != 66000 {
		t.Fatalf("equity: expected 66000, got %v", bs.Equity.Total)
	}

	// The two sides agree on this data set.
	if bs.TotalAssets != bs.TotalLiabilitiesAndEquity {
		t.Fatalf("sheet out of balance: assets=%v l+e=%v",
			bs.TotalAssets, bs.TotalLiabilitiesAndEquity)
	}
}

func TestBuildBalanceSheetDepreciationPosting(t *testing.T) {
	// A depreciation posting credits accumulated depreciation. The
	// account is contra-asset, so its balance grows with credits and
	// the sheet's Net subtraction reduces fixed assets.
	depreciation := &domain.Account{
		Code: "1590", Type: domain.AccountContraAsset, IsActive: true,
	}

	credit := 1000.0
	delta := 0 - credit
	if !depreciation.Type.IsDebitNormal() {
		delta = credit - 0
	}
	depreciation.Balance += delta

	if depreciation.Balance != 1000 {
		t.Fatalf("credit must grow a contra-asset balance, got %v", depreciation.Balance)
	}

	bs := BuildBalanceSheet([]*domain.Account{
		account("1500", 50000),
		depreciation,
	}, time.Now())

	if bs.FixedAssets.Depreciation != 1000 {
		t.Fatalf("depreciation line: expected 1000, got %v", bs.FixedAssets.Depreciation)
	}
	if bs.FixedAssets.Net != 49000 {
		t.Fatalf("net fixed assets: expected 49000, got %v", bs.FixedAssets.Net)
	}
}

func TestBuildBalanceSheetTotalsHoldByConstruction(t *testing.T) {
	bs := BuildBalanceSheet([]*domain.Account{
		account("1000", 100),
		account("2000", 70),
	}, time.Now())

	if got := bs.CurrentAssets.Total + bs.FixedAssets.Net + bs.OtherAssets; bs.TotalAssets != got {
		t.Fatalf("asset total identity broken: %v != %v", bs.TotalAssets, got)
	}
	if got := bs.TotalLiabilities + bs.Equity.Total; bs.TotalLiabilitiesAndEquity != got {
		t.Fatalf("liability+equity identity broken: %v != %v", bs.TotalLiabilitiesAndEquity, got)
	}
}

func TestBuildBalanceSheetEmpty(t *testing.T) {
	bs := BuildBalanceSheet(nil, time.Now())
	if bs.TotalAssets != 0 || bs.TotalLiabilitiesAndEquity != 0 {
		t.Fatalf("empty chart must produce zero sheet: %+v", bs)
	}
}
