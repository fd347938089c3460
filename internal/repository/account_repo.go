package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-backoffice/internal/domain"
	"freight-backoffice/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository interface {
	SeedDefaults(ctx context.Context, accounts []*domain.Account, tx pgx.Tx) map[int]error
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAsOf(ctx context.Context, asOf time.Time) ([]*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Count(ctx context.Context) (int, error)

	CreateGLEntry(ctx context.Context, tx pgx.Tx, e *domain.GLEntry) error
	ApplyToBalance(ctx context.Context, tx pgx.Tx, code string, delta float64) error
	ListGLEntries(ctx context.Context, filter domain.GLEntryFilter) ([]*domain.GLEntry, error)

	BeginTx(ctx context.Context) (pgx.Tx, error)
}

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepo(db *pgxpool.Pool) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.db.BeginTx(ctx, pgx.TxOptions{})
}

// SeedDefaults upserts the chart of accounts, keeping stored balances
// on conflict.
func (r *accountRepo) SeedDefaults(ctx context.Context, accounts []*domain.Account, tx pgx.Tx) map[int]error {
	if tx == nil {
		return map[int]error{0: pgx.ErrTxClosed}
	}

	errs := make(map[int]error)
	now := time.Now()
	for i, a := range accounts {
		_, err := tx.Exec(ctx, `
			INSERT INTO accounts (code, name, type, balance, is_active, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$6)
			ON CONFLICT (code) DO UPDATE
			SET name = EXCLUDED.name,
			    type = EXCLUDED.type,
			    updated_at = EXCLUDED.updated_at
		`, a.Code, a.Name, a.Type, a.Balance, a.IsActive, now)
		if err != nil {
			errs[i] = err
		}
	}
	return errs
}

func (r *accountRepo) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRow(ctx, `
		SELECT id, code, name, type, balance, is_active, created_at, updated_at
		FROM accounts WHERE code=$1
	`, code).Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.Balance, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) List(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, name, type, balance, is_active, created_at, updated_at
		FROM accounts
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

// ListAsOf returns account snapshots with balances rolled back to the
// given date: stored balance minus the net of postings after asOf.
// Debit-normal accounts move by debit-credit, credit-normal accounts
// by credit-debit.
func (r *accountRepo) ListAsOf(ctx context.Context, asOf time.Time) ([]*domain.Account, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.code, a.name, a.type,
			a.balance - COALESCE((
				SELECT CASE
					WHEN a.type IN ('asset','expense','cost_of_services')
					THEN SUM(g.debit - g.credit)
					ELSE SUM(g.credit - g.debit)
				END
				FROM gl_entries g
				WHERE g.account_code = a.code AND g.date > $1
			), 0),
			a.is_active, a.created_at, a.updated_at
		FROM accounts a
		ORDER BY a.code ASC
	`, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (r *accountRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.Balance, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

func (r *accountRepo) CreateGLEntry(ctx context.Context, tx pgx.Tx, e *domain.GLEntry) error {
	if tx == nil {
		return pgx.ErrTxClosed
	}

	now := time.Now()
	err := tx.QueryRow(ctx, `
		INSERT INTO gl_entries (account_code, date, debit, credit, memo, job_number, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, e.AccountCode, e.Date, e.Debit, e.Credit, e.Memo, e.JobNumber, now).Scan(&e.ID)
	if err != nil {
		return err
	}
	e.CreatedAt = now
	return nil
}

func (r *accountRepo) ApplyToBalance(ctx context.Context, tx pgx.Tx, code string, delta float64) error {
	if tx == nil {
		return pgx.ErrTxClosed
	}

	tag, err := tx.Exec(ctx, `
		UPDATE accounts SET balance = balance + $2, updated_at = $3 WHERE code=$1
	`, code, delta, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *accountRepo) ListGLEntries(ctx context.Context, filter domain.GLEntryFilter) ([]*domain.GLEntry, error) {
	query := `
		SELECT id, account_code, date, debit, credit, memo, job_number, created_at
		FROM gl_entries WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.AccountCode != nil {
		query += fmt.Sprintf(" AND account_code=$%d", idx)
		args = append(args, *filter.AccountCode)
		idx++
	}
	if filter.CodePrefix != nil {
		query += fmt.Sprintf(" AND account_code LIKE $%d", idx)
		args = append(args, *filter.CodePrefix+"%")
		idx++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", idx)
		args = append(args, *filter.StartDate)
		idx++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", idx)
		args = append(args, *filter.EndDate)
		idx++
	}

	query += " ORDER BY date ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.GLEntry
	for rows.Next() {
		var e domain.GLEntry
		if err := rows.Scan(&e.ID, &e.AccountCode, &e.Date, &e.Debit, &e.Credit,
			&e.Memo, &e.JobNumber, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
