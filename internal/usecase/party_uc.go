package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freight-backoffice/internal/domain"
	"freight-backoffice/internal/repository"
	"freight-backoffice/pkg/xerrors"

	"github.com/redis/go-redis/v9"
)

type PartyUsecase struct {
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
	redisClient  *redis.Client
}

func NewPartyUsecase(
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	redisClient *redis.Client,
) *PartyUsecase {
	return &PartyUsecase{
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		redisClient:  redisClient,
	}
}

// ===============================
// CUSTOMERS
// ===============================

func (uc *PartyUsecase) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := uc.validateParty(c.Code, c.Name); err != nil {
		return err
	}
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	uc.invalidatePartyCaches(ctx, "customer")
	return nil
}

func (uc *PartyUsecase) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := uc.validateParty(c.Code, c.Name); err != nil {
		return err
	}
	if err := uc.customerRepo.Update(ctx, c); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	uc.invalidatePartyCaches(ctx, "customer")
	return nil
}

func (uc *PartyUsecase) DeleteCustomer(ctx context.Context, id int64) error {
	if err := uc.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidatePartyCaches(ctx, "customer")
	return nil
}

// GetCustomer retrieves a customer by ID with caching
func (uc *PartyUsecase) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	// Try cache first (5 minutes)
	cacheKey := fmt.Sprintf("party:customer:id:%d", id)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var c domain.Customer
		if jsonErr := json.Unmarshal([]byte(val), &c); jsonErr == nil {
			return &c, nil
		}
	}

	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache result
	if data, err := json.Marshal(c); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return c, nil
}

func (uc *PartyUsecase) ListCustomers(ctx context.Context, filter domain.PartyFilter) ([]*domain.Customer, error) {
	customers, err := uc.customerRepo.List(ctx, normalizePartyFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// ===============================
// VENDORS
// ===============================

func (uc *PartyUsecase) CreateVendor(ctx context.Context, v *domain.Vendor) error {
	if err := uc.validateParty(v.Code, v.Name); err != nil {
		return err
	}
	if err := uc.vendorRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	uc.invalidatePartyCaches(ctx, "vendor")
	return nil
}

func (uc *PartyUsecase) UpdateVendor(ctx context.Context, v *domain.Vendor) error {
	if err := uc.validateParty(v.Code, v.Name); err != nil {
		return err
	}
	if err := uc.vendorRepo.Update(ctx, v); err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	uc.invalidatePartyCaches(ctx, "vendor")
	return nil
}

func (uc *PartyUsecase) DeleteVendor(ctx context.Context, id int64) error {
	if err := uc.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidatePartyCaches(ctx, "vendor")
	return nil
}

// GetVendor retrieves a vendor by ID with caching
func (uc *PartyUsecase) GetVendor(ctx context.Context, id int64) (*domain.Vendor, error) {
	// Try cache first (5 minutes)
	cacheKey := fmt.Sprintf("party:vendor:id:%d", id)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var v domain.Vendor
		if jsonErr := json.Unmarshal([]byte(val), &v); jsonErr == nil {
			return &v, nil
		}
	}

	v, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache result
	if data, err := json.Marshal(v); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return v, nil
}

func (uc *PartyUsecase) ListVendors(ctx context.Context, filter domain.PartyFilter) ([]*domain.Vendor, error) {
	vendors, err := uc.vendorRepo.List(ctx, normalizePartyFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

// ===============================
// VALIDATION & CACHE
// ===============================

func (uc *PartyUsecase) validateParty(code, name string) error {
	if code == "" {
		return fmt.Errorf("code is required: %w", xerrors.ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("name is required: %w", xerrors.ErrInvalidInput)
	}
	return nil
}

func normalizePartyFilter(filter domain.PartyFilter) domain.PartyFilter {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	return filter
}

func (uc *PartyUsecase) invalidatePartyCaches(ctx context.Context, partyType string) {
	iter := uc.redisClient.Scan(ctx, 0, fmt.Sprintf("party:%s:*", partyType), 0).Iterator()
	for iter.Next(ctx) {
		_ = uc.redisClient.Del(ctx, iter.Val()).Err()
	}
}
