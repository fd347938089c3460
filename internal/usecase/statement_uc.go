package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"freight-backoffice/internal/domain"
	"freight-backoffice/internal/repository"
	"freight-backoffice/internal/statement"
	"freight-backoffice/pkg/xerrors"

	"github.com/redis/go-redis/v9"
)

type StatementUsecase struct {
	accountRepo repository.AccountRepository
	redisClient *redis.Client
}

func NewStatementUsecase(
	accountRepo repository.AccountRepository,
	redisClient *redis.Client,
) *StatementUsecase {
	return &StatementUsecase{
		accountRepo: accountRepo,
		redisClient: redisClient,
	}
}

// ===============================
// FINANCIAL STATEMENTS
// ===============================

// GenerateProfitLoss aggregates general ledger postings for a period
// into a profit and loss statement.
func (uc *StatementUsecase) GenerateProfitLoss(ctx context.Context, from, to time.Time) (*domain.ProfitLossStatement, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("period %s..%s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), xerrors.ErrInvalidPeriod)
	}

	// Try cache first (5 minutes)
	cacheKey := fmt.Sprintf("statement:pl:%d:%d", from.Unix(), to.Unix())

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var stmt domain.ProfitLossStatement
		if jsonErr := json.Unmarshal([]byte(val), &stmt); jsonErr == nil {
			return &stmt, nil
		}
	}

	entries, err := uc.accountRepo.ListGLEntries(ctx, domain.GLEntryFilter{
		StartDate: &from,
		EndDate:   &to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list gl entries: %w", err)
	}

	stmt := statement.BuildProfitLoss(entries, from, to)

	// Cache result
	if data, err := json.Marshal(stmt); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return stmt, nil
}

// GenerateBalanceSheet builds a balance sheet as of a date from
// account balances rolled back to that date.
func (uc *StatementUsecase) GenerateBalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetStatement, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	// Try cache first (5 minutes)
	cacheKey := fmt.Sprintf("statement:bs:%d", asOf.Unix())

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var stmt domain.BalanceSheetStatement
		if jsonErr := json.Unmarshal([]byte(val), &stmt); jsonErr == nil {
			return &stmt, nil
		}
	}

	accounts, err := uc.accountRepo.ListAsOf(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	stmt := statement.BuildBalanceSheet(accounts, asOf)

	// Cache result
	if data, err := json.Marshal(stmt); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return stmt, nil
}

// ===============================
// GENERAL LEDGER
// ===============================

// PostGLEntry records a single posting and moves the account balance
// by its net debit. Runs in one transaction so balance and posting
// never drift.
func (uc *StatementUsecase) PostGLEntry(ctx context.Context, e *domain.GLEntry) error {
	if e.AccountCode == "" {
		return fmt.Errorf("account_code is required: %w", xerrors.ErrInvalidInput)
	}
	if e.Debit < 0 || e.Credit < 0 ||
		math.IsNaN(e.Debit) || math.IsNaN(e.Credit) ||
		math.IsInf(e.Debit, 0) || math.IsInf(e.Credit, 0) {
		return xerrors.ErrInvalidAmount
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	account, err := uc.accountRepo.GetByCode(ctx, e.AccountCode)
	if err != nil {
		return fmt.Errorf("account %s: %w", e.AccountCode, err)
	}

	tx, err := uc.accountRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := uc.accountRepo.CreateGLEntry(ctx, tx, e); err != nil {
		return fmt.Errorf("failed to post gl entry: %w", err)
	}

	delta := e.Debit - e.Credit
	if !account.Type.IsDebitNormal() {
		delta = e.Credit - e.Debit
	}
	if err := uc.accountRepo.ApplyToBalance(ctx, tx, e.AccountCode, delta); err != nil {
		return fmt.Errorf("failed to apply balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit gl entry: %w", err)
	}

	invalidateByPattern(ctx, uc.redisClient, "statement:*")
	return nil
}

func (uc *StatementUsecase) ListGLEntries(ctx context.Context, filter domain.GLEntryFilter) ([]*domain.GLEntry, error) {
	entries, err := uc.accountRepo.ListGLEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gl entries: %w", err)
	}
	return entries, nil
}

// ListAccounts retrieves the chart of accounts with caching
func (uc *StatementUsecase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	// Try cache first (5 minutes)
	cacheKey := "statement:accounts"

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var accounts []*domain.Account
		if jsonErr := json.Unmarshal([]byte(val), &accounts); jsonErr == nil {
			return accounts, nil
		}
	}

	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	// Cache result
	if data, err := json.Marshal(accounts); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return accounts, nil
}
