package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freight-backoffice/internal/domain"
	publisher "freight-backoffice/internal/pub"
	"freight-backoffice/internal/repository"
	"freight-backoffice/pkg/utils"
	"freight-backoffice/pkg/xerrors"

	"github.com/redis/go-redis/v9"
)

// ExpenseUsecase covers the two cost-side documents: internal
// expenses and vendor bills.
type ExpenseUsecase struct {
	expenseRepo repository.ExpenseRepository
	billRepo    repository.VendorBillRepository
	redisClient *redis.Client
	publisher   *publisher.DocumentEventPublisher
	refs        *utils.ReferenceGenerator
}

func NewExpenseUsecase(
	expenseRepo repository.ExpenseRepository,
	billRepo repository.VendorBillRepository,
	redisClient *redis.Client,
	pub *publisher.DocumentEventPublisher,
	refs *utils.ReferenceGenerator,
) *ExpenseUsecase {
	return &ExpenseUsecase{
		expenseRepo: expenseRepo,
		billRepo:    billRepo,
		redisClient: redisClient,
		publisher:   pub,
		refs:        refs,
	}
}

// ===============================
// EXPENSES
// ===============================

func (uc *ExpenseUsecase) CreateExpense(ctx context.Context, e *domain.Expense) error {
	if err := uc.validateExpense(e); err != nil {
		return err
	}

	if err := uc.expenseRepo.Create(ctx, e); err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	uc.invalidateExpenseCaches(ctx, e.ID)
	_ = uc.publisher.PublishDocument(ctx, "expense.created", e.ID, string(e.Category),
		e.JobNumber, e.Currency, floatValue(e.Amount), string(e.Status))
	return nil
}

func (uc *ExpenseUsecase) UpdateExpense(ctx context.Context, e *domain.Expense) error {
	if err := uc.validateExpense(e); err != nil {
		return err
	}

	if err := uc.expenseRepo.Update(ctx, e); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	uc.invalidateExpenseCaches(ctx, e.ID)
	_ = uc.publisher.PublishDocument(ctx, "expense.updated", e.ID, string(e.Category),
		e.JobNumber, e.Currency, floatValue(e.Amount), string(e.Status))
	return nil
}

func (uc *ExpenseUsecase) DeleteExpense(ctx context.Context, id int64) error {
	e, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	uc.invalidateExpenseCaches(ctx, id)
	_ = uc.publisher.PublishDocument(ctx, "expense.deleted", id, string(e.Category),
		e.JobNumber, e.Currency, floatValue(e.Amount), string(e.Status))
	return nil
}

// GetExpense retrieves an expense by ID with caching
func (uc *ExpenseUsecase) GetExpense(ctx context.Context, id int64) (*domain.Expense, error) {
	// Try cache first (5 minutes)
	cacheKey := fmt.Sprintf("expense:id:%d", id)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var e domain.Expense
		if jsonErr := json.Unmarshal([]byte(val), &e); jsonErr == nil {
			return &e, nil
		}
	}

	e, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache result
	if data, err := json.Marshal(e); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return e, nil
}

func (uc *ExpenseUsecase) ListExpenses(ctx context.Context, filter domain.RecordFilter) ([]*domain.Expense, error) {
	expenses, err := uc.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// ===============================
// VENDOR BILLS
// ===============================

func (uc *ExpenseUsecase) CreateBill(ctx context.Context, b *domain.VendorBill) error {
	if err := uc.validateBill(b); err != nil {
		return err
	}
	if b.BillNumber == "" {
		b.BillNumber = uc.refs.NewBillNumber()
	}

	if err := uc.billRepo.Create(ctx, b); err != nil {
		return fmt.Errorf("failed to create vendor bill: %w", err)
	}

	uc.invalidateBillCaches(ctx, b.ID)
	_ = uc.publisher.PublishDocument(ctx, "vendor_bill.created", b.ID, b.BillNumber,
		b.JobNumber, b.Currency, floatValue(b.Amount), string(b.Status))
	return nil
}

func (uc *ExpenseUsecase) UpdateBill(ctx context.Context, b *domain.VendorBill) error {
	if err := uc.validateBill(b); err != nil {
		return err
	}

	if err := uc.billRepo.Update(ctx, b); err != nil {
		return fmt.Errorf("failed to update vendor bill: %w", err)
	}

	uc.invalidateBillCaches(ctx, b.ID)
	_ = uc.publisher.PublishDocument(ctx, "vendor_bill.updated", b.ID, b.BillNumber,
		b.JobNumber, b.Currency, floatValue(b.Amount), string(b.Status))
	return nil
}

func (uc *ExpenseUsecase) DeleteBill(ctx context.Context, id int64) error {
	b, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.billRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vendor bill: %w", err)
	}

	uc.invalidateBillCaches(ctx, id)
	_ = uc.publisher.PublishDocument(ctx, "vendor_bill.deleted", id, b.BillNumber,
		b.JobNumber, b.Currency, floatValue(b.Amount), string(b.Status))
	return nil
}

// GetBill retrieves a vendor bill by ID with caching
func (uc *ExpenseUsecase) GetBill(ctx context.Context, id int64) (*domain.VendorBill, error) {
	// Try cache first (5 minutes)
	cacheKey := fmt.Sprintf("bill:id:%d", id)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var b domain.VendorBill
		if jsonErr := json.Unmarshal([]byte(val), &b); jsonErr == nil {
			return &b, nil
		}
	}

	b, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache result
	if data, err := json.Marshal(b); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return b, nil
}

func (uc *ExpenseUsecase) ListBills(ctx context.Context, filter domain.RecordFilter) ([]*domain.VendorBill, error) {
	bills, err := uc.billRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor bills: %w", err)
	}
	return bills, nil
}

// ===============================
// VALIDATION & CACHE
// ===============================

func (uc *ExpenseUsecase) validateExpense(e *domain.Expense) error {
	if e.Currency == "" {
		return fmt.Errorf("currency is required: %w", xerrors.ErrInvalidInput)
	}
	if _, ok := domain.ExpenseCategoryLabels[e.Category]; !ok {
		return fmt.Errorf("category %q: %w", e.Category, xerrors.ErrInvalidInput)
	}
	if e.Status == "" {
		e.Status = domain.StatusPending
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("status %q: %w", e.Status, xerrors.ErrUnknownStatus)
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	return nil
}

func (uc *ExpenseUsecase) validateBill(b *domain.VendorBill) error {
	if b.Currency == "" {
		return fmt.Errorf("currency is required: %w", xerrors.ErrInvalidInput)
	}
	if b.VendorName == "" && b.VendorID == "" {
		return fmt.Errorf("vendor is required: %w", xerrors.ErrInvalidInput)
	}
	if b.Status == "" {
		b.Status = domain.StatusPending
	}
	if !b.Status.IsValid() {
		return fmt.Errorf("status %q: %w", b.Status, xerrors.ErrUnknownStatus)
	}
	if b.Date.IsZero() {
		b.Date = time.Now()
	}
	return nil
}

func (uc *ExpenseUsecase) invalidateExpenseCaches(ctx context.Context, id int64) {
	_ = uc.redisClient.Del(ctx, fmt.Sprintf("expense:id:%d", id)).Err()
	invalidateDerivedCaches(ctx, uc.redisClient)
}

func (uc *ExpenseUsecase) invalidateBillCaches(ctx context.Context, id int64) {
	_ = uc.redisClient.Del(ctx, fmt.Sprintf("bill:id:%d", id)).Err()
	invalidateDerivedCaches(ctx, uc.redisClient)
}
