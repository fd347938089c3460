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

type InvoiceUsecase struct {
	invoiceRepo repository.InvoiceRepository
	redisClient *redis.Client
	publisher   *publisher.DocumentEventPublisher
	refs        *utils.ReferenceGenerator
}

func NewInvoiceUsecase(
	invoiceRepo repository.InvoiceRepository,
	redisClient *redis.Client,
	pub *publisher.DocumentEventPublisher,
	refs *utils.ReferenceGenerator,
) *InvoiceUsecase {
	return &InvoiceUsecase{
		invoiceRepo: invoiceRepo,
		redisClient: redisClient,
		publisher:   pub,
		refs:        refs,
	}
}

// ===============================
// WRITE PATH
// ===============================

func (uc *InvoiceUsecase) Create(ctx context.Context, inv *domain.Invoice) error {
	if err := uc.validate(inv); err != nil {
		return err
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = uc.refs.NewInvoiceNumber()
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	uc.invalidateInvoiceCaches(ctx, inv.ID)
	_ = uc.publisher.PublishDocument(ctx, "invoice.created", inv.ID, inv.InvoiceNumber,
		inv.JobNumber, inv.Currency, floatValue(inv.Amount), string(inv.Status))
	return nil
}

func (uc *InvoiceUsecase) Update(ctx context.Context, inv *domain.Invoice) error {
	if err := uc.validate(inv); err != nil {
		return err
	}

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	uc.invalidateInvoiceCaches(ctx, inv.ID)
	_ = uc.publisher.PublishDocument(ctx, "invoice.updated", inv.ID, inv.InvoiceNumber,
		inv.JobNumber, inv.Currency, floatValue(inv.Amount), string(inv.Status))
	return nil
}

func (uc *InvoiceUsecase) Delete(ctx context.Context, id int64) error {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.invoiceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	uc.invalidateInvoiceCaches(ctx, id)
	_ = uc.publisher.PublishDocument(ctx, "invoice.deleted", id, inv.InvoiceNumber,
		inv.JobNumber, inv.Currency, floatValue(inv.Amount), string(inv.Status))
	return nil
}

// ===============================
// READ PATH
// ===============================

// GetByID retrieves an invoice by ID with caching
func (uc *InvoiceUsecase) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	// Try cache first (5 minutes)
	cacheKey := fmt.Sprintf("invoice:id:%d", id)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var inv domain.Invoice
		if jsonErr := json.Unmarshal([]byte(val), &inv); jsonErr == nil {
			return &inv, nil
		}
	}

	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache result
	if data, err := json.Marshal(inv); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return inv, nil
}

func (uc *InvoiceUsecase) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Invoice, error) {
	invoices, err := uc.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// ListByJob retrieves invoices for a shipment job with caching
func (uc *InvoiceUsecase) ListByJob(ctx context.Context, jobNumber string) ([]*domain.Invoice, error) {
	if jobNumber == "" {
		return nil, xerrors.ErrJobNumberRequired
	}

	// Try cache first (1 minute)
	cacheKey := fmt.Sprintf("invoice:job:%s", jobNumber)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var invoices []*domain.Invoice
		if jsonErr := json.Unmarshal([]byte(val), &invoices); jsonErr == nil {
			return invoices, nil
		}
	}

	invoices, err := uc.invoiceRepo.ListByJob(ctx, jobNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices by job: %w", err)
	}

	// Cache result
	if data, err := json.Marshal(invoices); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 1*time.Minute).Err()
	}

	return invoices, nil
}

// ===============================
// VALIDATION & CACHE
// ===============================

func (uc *InvoiceUsecase) validate(inv *domain.Invoice) error {
	if inv.Currency == "" {
		return fmt.Errorf("currency is required: %w", xerrors.ErrInvalidInput)
	}
	if inv.Status == "" {
		inv.Status = domain.StatusDraft
	}
	if !inv.Status.IsValid() {
		return fmt.Errorf("status %q: %w", inv.Status, xerrors.ErrUnknownStatus)
	}
	if inv.PartyType == "" {
		inv.PartyType = domain.PartyTypeCustomer
	}
	if inv.Date.IsZero() {
		inv.Date = time.Now()
	}
	return nil
}

func (uc *InvoiceUsecase) invalidateInvoiceCaches(ctx context.Context, id int64) {
	_ = uc.redisClient.Del(ctx, fmt.Sprintf("invoice:id:%d", id)).Err()
	invalidateByPattern(ctx, uc.redisClient, "invoice:job:*")
	invalidateDerivedCaches(ctx, uc.redisClient)
}
