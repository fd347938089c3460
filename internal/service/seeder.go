package service

import (
	"context"
	"fmt"

	"freight-backoffice/internal/domain"
	"freight-backoffice/internal/repository"

	"go.uber.org/zap"
)

// SystemSeeder installs the default chart of accounts on first boot.
// Reseeding an already-populated database is a no-op.
type SystemSeeder struct {
	accountRepo repository.AccountRepository
	logger      *zap.Logger
}

func NewSystemSeeder(accountRepo repository.AccountRepository, logger *zap.Logger) *SystemSeeder {
	return &SystemSeeder{accountRepo: accountRepo, logger: logger}
}

func (s *SystemSeeder) SeedSystem(ctx context.Context) error {
	count, err := s.accountRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		s.logger.Info("chart of accounts already seeded", zap.Int("accounts", count))
		return nil
	}

	tx, err := s.accountRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	errs := s.accountRepo.SeedDefaults(ctx, domain.DefaultChartOfAccounts, tx)
	if len(errs) > 0 {
		for i, seedErr := range errs {
			s.logger.Error("account seed failed",
				zap.String("code", domain.DefaultChartOfAccounts[i].Code),
				zap.Error(seedErr))
		}
		return fmt.Errorf("seeding failed for %d accounts", len(errs))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	s.logger.Info("chart of accounts seeded",
		zap.Int("accounts", len(domain.DefaultChartOfAccounts)))
	return nil
}
