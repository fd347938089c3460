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

type ShipmentUsecase struct {
	shipmentRepo repository.ShipmentRepository
	redisClient  *redis.Client
	publisher    *publisher.DocumentEventPublisher
	refs         *utils.ReferenceGenerator
}

func NewShipmentUsecase(
	shipmentRepo repository.ShipmentRepository,
	redisClient *redis.Client,
	pub *publisher.DocumentEventPublisher,
	refs *utils.ReferenceGenerator,
) *ShipmentUsecase {
	return &ShipmentUsecase{
		shipmentRepo: shipmentRepo,
		redisClient:  redisClient,
		publisher:    pub,
		refs:         refs,
	}
}

// ===============================
// WRITE PATH
// ===============================

func (uc *ShipmentUsecase) Create(ctx context.Context, s *domain.Shipment) error {
	if err := uc.validate(s); err != nil {
		return err
	}
	if s.JobNumber == "" {
		s.JobNumber = uc.refs.NewJobNumber()
	}
	if s.Status == "" {
		s.Status = domain.ShipmentBooked
	}

	if err := uc.shipmentRepo.Create(ctx, s); err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	uc.invalidateShipmentCaches(ctx, s.ID, s.JobNumber)
	return nil
}

func (uc *ShipmentUsecase) Update(ctx context.Context, s *domain.Shipment) error {
	if err := uc.validate(s); err != nil {
		return err
	}

	if err := uc.shipmentRepo.Update(ctx, s); err != nil {
		return fmt.Errorf("failed to update shipment: %w", err)
	}

	uc.invalidateShipmentCaches(ctx, s.ID, s.JobNumber)
	return nil
}

// Transition moves a shipment along its lifecycle. Only forward steps
// defined by the status machine are allowed.
func (uc *ShipmentUsecase) Transition(ctx context.Context, id int64, next domain.ShipmentStatus) (*domain.Shipment, error) {
	s, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("shipment %s: %s -> %s: %w",
			s.JobNumber, s.Status, next, xerrors.ErrInvalidTransition)
	}

	if err := uc.shipmentRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("failed to update shipment status: %w", err)
	}

	uc.invalidateShipmentCaches(ctx, id, s.JobNumber)
	_ = uc.publisher.PublishShipmentStatus(ctx, id, s.JobNumber, string(s.Status), string(next))

	s.Status = next
	return s, nil
}

func (uc *ShipmentUsecase) Delete(ctx context.Context, id int64) error {
	s, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.shipmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shipment: %w", err)
	}

	uc.invalidateShipmentCaches(ctx, id, s.JobNumber)
	return nil
}

// ===============================
// READ PATH
// ===============================

// GetByID retrieves a shipment by ID with caching
func (uc *ShipmentUsecase) GetByID(ctx context.Context, id int64) (*domain.Shipment, error) {
	// Try cache first (1 minute)
	cacheKey := fmt.Sprintf("shipment:id:%d", id)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var s domain.Shipment
		if jsonErr := json.Unmarshal([]byte(val), &s); jsonErr == nil {
			return &s, nil
		}
	}

	s, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache result
	if data, err := json.Marshal(s); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 1*time.Minute).Err()
	}

	return s, nil
}

func (uc *ShipmentUsecase) GetByJobNumber(ctx context.Context, jobNumber string) (*domain.Shipment, error) {
	if jobNumber == "" {
		return nil, xerrors.ErrJobNumberRequired
	}

	// Try cache first (1 minute)
	cacheKey := fmt.Sprintf("shipment:job:%s", jobNumber)

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var s domain.Shipment
		if jsonErr := json.Unmarshal([]byte(val), &s); jsonErr == nil {
			return &s, nil
		}
	}

	s, err := uc.shipmentRepo.GetByJobNumber(ctx, jobNumber)
	if err != nil {
		return nil, err
	}

	// Cache result
	if data, err := json.Marshal(s); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 1*time.Minute).Err()
	}

	return s, nil
}

func (uc *ShipmentUsecase) List(ctx context.Context, filter domain.ShipmentFilter) ([]*domain.Shipment, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	shipments, err := uc.shipmentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, nil
}

// ===============================
// VALIDATION & CACHE
// ===============================

func (uc *ShipmentUsecase) validate(s *domain.Shipment) error {
	if s.Direction != domain.DirectionImport && s.Direction != domain.DirectionExport {
		return fmt.Errorf("direction %q: %w", s.Direction, xerrors.ErrInvalidInput)
	}
	if s.Mode != domain.ModeSea && s.Mode != domain.ModeAir {
		return fmt.Errorf("mode %q: %w", s.Mode, xerrors.ErrInvalidInput)
	}
	return nil
}

func (uc *ShipmentUsecase) invalidateShipmentCaches(ctx context.Context, id int64, jobNumber string) {
	_ = uc.redisClient.Del(ctx, fmt.Sprintf("shipment:id:%d", id)).Err()
	if jobNumber != "" {
		_ = uc.redisClient.Del(ctx, fmt.Sprintf("shipment:job:%s", jobNumber)).Err()
	}
}
