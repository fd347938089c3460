package usecase

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"freight-backoffice/internal/domain"
	"freight-backoffice/pkg/xerrors"

	"github.com/redis/go-redis/v9"
)

type CurrencyUsecase struct {
	currencies  *domain.CurrencyTable
	redisClient *redis.Client
}

func NewCurrencyUsecase(currencies *domain.CurrencyTable, redisClient *redis.Client) *CurrencyUsecase {
	return &CurrencyUsecase{currencies: currencies, redisClient: redisClient}
}

// Options lists supported currencies for dropdowns with caching
func (uc *CurrencyUsecase) Options(ctx context.Context) ([]domain.CurrencyOption, error) {
	// Try cache first (5 minutes)
	cacheKey := "currency:options"

	if val, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var options []domain.CurrencyOption
		if jsonErr := json.Unmarshal([]byte(val), &options); jsonErr == nil {
			return options, nil
		}
	}

	options := uc.currencies.Options()

	// Cache result
	if data, err := json.Marshal(options); err == nil {
		_ = uc.redisClient.Set(ctx, cacheKey, data, 5*time.Minute).Err()
	}

	return options, nil
}

// Convert rejects non-finite and negative inputs; unknown codes fall
// back to a 1:1 rate inside the table.
func (uc *CurrencyUsecase) Convert(amount float64, from, to string) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, xerrors.ErrInvalidAmount
	}
	return uc.currencies.Convert(amount, from, to), nil
}

func (uc *CurrencyUsecase) Format(amount float64, code string) string {
	return uc.currencies.Format(amount, code)
}
