package usecase

import (
	"strings"
	"testing"

	"freight-backoffice/internal/domain"
)

func TestStatementCacheKeyNamespaces(t *testing.T) {
	uc := NewLedgerUsecase(nil, nil, nil, nil, nil)

	for _, kind := range []string{"view", "balance", "aging"} {
		key := uc.buildStatementCacheKey(kind, domain.ViewReceivable, "USD", domain.RecordFilter{}, false)

		want := "ledger:" + kind + ":receivable:USD"
		if key != want {
			t.Fatalf("cache key: expected %q, got %q", want, key)
		}
		if strings.Count(key, "ledger:") != 1 {
			t.Fatalf("namespace must appear once, got %q", key)
		}
	}
}

func TestStatementCacheKeyCarriesPredicates(t *testing.T) {
	uc := NewLedgerUsecase(nil, nil, nil, nil, nil)

	party := "C1"
	key := uc.buildStatementCacheKey("view", domain.ViewPayable, "EUR",
		domain.RecordFilter{PartyID: &party}, true)

	if !strings.HasPrefix(key, "ledger:view:payable:EUR:") {
		t.Fatalf("unexpected key prefix: %q", key)
	}
	if !strings.Contains(key, "party_C1") || !strings.Contains(key, "settled") {
		t.Fatalf("predicates missing from key: %q", key)
	}
}
