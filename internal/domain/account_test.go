package domain

import "testing"

func TestAccountTypeIsDebitNormal(t *testing.T) {
	debitNormal := []AccountType{AccountAsset, AccountCOS, AccountExpense}
	for _, typ := range debitNormal {
		if !typ.IsDebitNormal() {
			t.Fatalf("%s must be debit-normal", typ)
		}
	}

	creditNormal := []AccountType{AccountContraAsset, AccountLiability, AccountEquity, AccountRevenue}
	for _, typ := range creditNormal {
		if typ.IsDebitNormal() {
			t.Fatalf("%s must be credit-normal", typ)
		}
	}
}

func TestDefaultChartDepreciationIsContraAsset(t *testing.T) {
	for _, a := range DefaultChartOfAccounts {
		if a.Code == "1590" {
			if a.Type != AccountContraAsset {
				t.Fatalf("accumulated depreciation must be contra-asset, got %s", a.Type)
			}
			return
		}
	}
	t.Fatal("account 1590 missing from default chart")
}
