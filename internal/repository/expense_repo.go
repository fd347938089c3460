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

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Expense, error)
}

type expenseRepo struct {
	db *pgxpool.Pool
}

func NewExpenseRepo(db *pgxpool.Pool) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO expenses (category, date, currency, amount, status, job_number, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
		RETURNING id
	`, e.Category, e.Date, e.Currency, e.Amount, e.Status, e.JobNumber, e.Notes, now).Scan(&e.ID)
	if err != nil {
		return err
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

func (r *expenseRepo) Update(ctx context.Context, e *domain.Expense) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE expenses
		SET category=$2, date=$3, currency=$4, amount=$5, status=$6, job_number=$7, notes=$8, updated_at=$9
		WHERE id=$1
	`, e.ID, e.Category, e.Date, e.Currency, e.Amount, e.Status, e.JobNumber, e.Notes, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrRecordNotFound
	}
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrRecordNotFound
	}
	return nil
}

func (r *expenseRepo) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	var e domain.Expense
	err := r.db.QueryRow(ctx, `
		SELECT id, category, date, currency, amount, status, job_number, notes, created_at, updated_at
		FROM expenses WHERE id=$1
	`, id).Scan(&e.ID, &e.Category, &e.Date, &e.Currency, &e.Amount, &e.Status,
		&e.JobNumber, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrRecordNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Expense, error) {
	query := `
		SELECT id, category, date, currency, amount, status, job_number, notes, created_at, updated_at
		FROM expenses WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status=$%d", idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.JobNumber != nil {
		query += fmt.Sprintf(" AND job_number=$%d", idx)
		args = append(args, *filter.JobNumber)
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

	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Date, &e.Currency, &e.Amount, &e.Status,
			&e.JobNumber, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}
