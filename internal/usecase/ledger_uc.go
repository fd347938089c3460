package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"freight-backoffice/internal/domain"
	"freight-backoffice/internal/ledger"
	"freight-backoffice/internal/repository"
	"freight-backoffice/pkg/xerrors"

	"github.com/redis/go-redis/v9"
)

type LedgerUsecase struct {
	invoiceRepo repository.InvoiceRepository
	expenseRepo repository.ExpenseRepository
	billRepo    repository.VendorBillRepository
	currencies  *domain.CurrencyTable
	redisClient *redis.Client
}

func NewLedgerUsecase(
	invoiceRepo repository.InvoiceRepository,
	expenseRepo repository.ExpenseRepository,
	billRepo repository.VendorBillRepository,
	currencies *domain.CurrencyTable,
	redisClient *redis.Client,
) *LedgerUsecase {
	return &LedgerUsecase{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		billRepo:    billRepo,
		currencies:  currencies,
		redisClient: redisClient,
	}
}

// ===============================
// LEDGER VIEWS
// ===============================

// GetStatement builds a ledger statement for a view: entries derived
// from source records, converted to the display currency, sorted by
// date and annotated with a running balance.
func (uc *LedgerUsecase) GetStatement(
	ctx context.Context,
	view domain.LedgerView,
	displayCurrency string,
	filter domain.RecordFilter,
	includeSettled bool,
) (*domain.LedgerStatement, error) {
	if !view.IsValid() {
		return nil, xerrors.ErrInvalidInput
	}
	if displayCurrency == "" {
		displayCurrency = "USD"
	}

	// Try cache first (1 minute)
	cacheKey := uc.buildStatementCacheKey("view", view, displayCurrency, filter, includeSettled)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var stmt domain.LedgerStatement
		if jsonErr := json.Unmarshal([]byte(val), &stmt); jsonErr == nil {
			return &stmt, nil
		}
	}

	entries, err := uc.deriveEntries(ctx, view, displayCurrency, filter, includeSettled)
	if err != nil {
		return nil, err
	}

	ledger.SortByDate(entries)
	lines := ledger.WithRunningBalance(entries, ledger.ContributionForView(view))

	stmt := &domain.LedgerStatement{
		View:            view,
		DisplayCurrency: displayCurrency,
		Lines:           lines,
		CurrentBalance:  ledger.CurrentBalance(lines),
		GeneratedAt:     time.Now(),
	}

	// Cache result
	if data, err := json.Marshal(stmt); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 1*time.Minute).Err()
	}

	return stmt, nil
}

// CurrentBalance returns only the closing balance of a view, cached on
// a shorter TTL than the full statement.
func (uc *LedgerUsecase) CurrentBalance(
	ctx context.Context,
	view domain.LedgerView,
	displayCurrency string,
	filter domain.RecordFilter,
) (float64, error) {
	if !view.IsValid() {
		return 0, xerrors.ErrInvalidInput
	}
	if displayCurrency == "" {
		displayCurrency = "USD"
	}

	// Try cache first (30 seconds)
	cacheKey := uc.buildStatementCacheKey("balance", view, displayCurrency, filter, false)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var balance float64
		if jsonErr := json.Unmarshal([]byte(val), &balance); jsonErr == nil {
			return balance, nil
		}
	}

	entries, err := uc.deriveEntries(ctx, view, displayCurrency, filter, false)
	if err != nil {
		return 0, err
	}

	ledger.SortByDate(entries)
	lines := ledger.WithRunningBalance(entries, ledger.ContributionForView(view))
	balance := ledger.CurrentBalance(lines)

	// Cache result
	if data, err := json.Marshal(balance); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 30*time.Second).Err()
	}

	return balance, nil
}

// GetAgingReport buckets open balances of a view by document age.
func (uc *LedgerUsecase) GetAgingReport(
	ctx context.Context,
	view domain.LedgerView,
	displayCurrency string,
	filter domain.RecordFilter,
) (*ledger.AgingReport, error) {
	if !view.IsValid() {
		return nil, xerrors.ErrInvalidInput
	}
	if displayCurrency == "" {
		displayCurrency = "USD"
	}

	// Try cache first (1 minute)
	cacheKey := uc.buildStatementCacheKey("aging", view, displayCurrency, filter, false)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var report ledger.AgingReport
		if jsonErr := json.Unmarshal([]byte(val), &report); jsonErr == nil {
			return &report, nil
		}
	}

	entries, err := uc.deriveEntries(ctx, view, displayCurrency, filter, false)
	if err != nil {
		return nil, err
	}

	report := ledger.BuildAgingReport(entries, view, displayCurrency, time.Now())

	// Cache result
	if data, err := json.Marshal(report); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 1*time.Minute).Err()
	}

	return report, nil
}

// deriveEntries assembles the entry set for a view. Receivable reads
// customer invoices, payable reads vendor bills, expenses and
// vendor-side invoices, general reads everything.
func (uc *LedgerUsecase) deriveEntries(
	ctx context.Context,
	view domain.LedgerView,
	displayCurrency string,
	filter domain.RecordFilter,
	includeSettled bool,
) ([]domain.LedgerEntry, error) {
	opts := ledger.DeriveOptions{IncludeSettled: includeSettled}

	var entries []domain.LedgerEntry

	if view == domain.ViewReceivable || view == domain.ViewPayable || view == domain.ViewGeneral {
		invoices, err := uc.invoiceRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list invoices: %w", err)
		}

		derived, err := ledger.DeriveInvoiceEntries(invoices, displayCurrency, uc.currencies, opts)
		if err != nil {
			return nil, err
		}
		for _, e := range derived {
			switch view {
			case domain.ViewReceivable:
				if e.PartyType == domain.PartyTypeCustomer {
					entries = append(entries, e)
				}
			case domain.ViewPayable:
				if e.PartyType == domain.PartyTypeVendor {
					entries = append(entries, e)
				}
			default:
				entries = append(entries, e)
			}
		}
	}

	if view == domain.ViewPayable || view == domain.ViewGeneral {
		bills, err := uc.billRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list vendor bills: %w", err)
		}
		billEntries, err := ledger.DeriveVendorBillEntries(bills, displayCurrency, uc.currencies)
		if err != nil {
			return nil, err
		}
		entries = append(entries, billEntries...)

		expenses, err := uc.expenseRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses: %w", err)
		}
		expenseEntries, err := ledger.DeriveExpenseEntries(expenses, displayCurrency, uc.currencies)
		if err != nil {
			return nil, err
		}
		entries = append(entries, expenseEntries...)
	}

	return entries, nil
}

// ===============================
// CACHE MANAGEMENT
// ===============================

// InvalidateLedgerCaches drops all cached ledger statements and
// balances. Called by the document usecases after every write.
func (uc *LedgerUsecase) InvalidateLedgerCaches(ctx context.Context) error {
	iter := uc.redisClient.Scan(ctx, 0, "ledger:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := uc.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	return iter.Err()
}

// ===============================
// HELPER METHODS
// ===============================

// buildStatementCacheKey produces keys of the form
// ledger:<kind>:<view>:<currency>[:predicates]; kind keeps statement,
// balance and aging caches in separate namespaces.
func (uc *LedgerUsecase) buildStatementCacheKey(
	kind string,
	view domain.LedgerView,
	displayCurrency string,
	filter domain.RecordFilter,
	includeSettled bool,
) string {
	parts := []string{fmt.Sprintf("ledger:%s:%s:%s", kind, view, displayCurrency)}

	if filter.PartyID != nil {
		parts = append(parts, fmt.Sprintf("party_%s", *filter.PartyID))
	}
	if filter.Status != nil {
		parts = append(parts, fmt.Sprintf("status_%s", *filter.Status))
	}
	if filter.JobNumber != nil {
		parts = append(parts, fmt.Sprintf("job_%s", *filter.JobNumber))
	}
	if filter.StartDate != nil {
		parts = append(parts, fmt.Sprintf("from_%d", filter.StartDate.Unix()))
	}
	if filter.EndDate != nil {
		parts = append(parts, fmt.Sprintf("to_%d", filter.EndDate.Unix()))
	}
	if filter.Limit > 0 {
		parts = append(parts, fmt.Sprintf("limit_%d_offset_%d", filter.Limit, filter.Offset))
	}
	if includeSettled {
		parts = append(parts, "settled")
	}

	return strings.Join(parts, ":")
}
