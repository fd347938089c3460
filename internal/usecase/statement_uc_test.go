package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"freight-backoffice/internal/domain"
	"freight-backoffice/pkg/xerrors"
)

func TestPostGLEntryRejectsBadAmounts(t *testing.T) {
	// Validation runs before any repository access.
	uc := NewStatementUsecase(nil, nil)

	cases := []struct {
		name          string
		debit, credit float64
	}{
		{"negative debit", -10, 0},
		{"negative credit", 0, -10},
		{"nan debit", math.NaN(), 0},
		{"inf debit", math.Inf(1), 0},
		{"inf credit", 0, math.Inf(-1)},
	}

	for _, tc := range cases {
		err := uc.PostGLEntry(context.Background(), &domain.GLEntry{
			AccountCode: "1000",
			Debit:       tc.debit,
			Credit:      tc.credit,
		})
		if !errors.Is(err, xerrors.ErrInvalidAmount) {
			t.Fatalf("%s: expected ErrInvalidAmount, got %v", tc.name, err)
		}
	}
}
