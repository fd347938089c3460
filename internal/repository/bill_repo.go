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

type VendorBillRepository interface {
	Create(ctx context.Context, b *domain.VendorBill) error
	Update(ctx context.Context, b *domain.VendorBill) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.VendorBill, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.VendorBill, error)
}

type vendorBillRepo struct {
	db *pgxpool.Pool
}

func NewVendorBillRepo(db *pgxpool.Pool) VendorBillRepository {
	return &vendorBillRepo{db: db}
}

func (r *vendorBillRepo) Create(ctx context.Context, b *domain.VendorBill) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO vendor_bills (bill_number, vendor_id, vendor_name, date, currency, amount, status, job_number, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10)
		RETURNING id
	`, b.BillNumber, b.VendorID, b.VendorName, b.Date, b.Currency, b.Amount,
		b.Status, b.JobNumber, b.Notes, now).Scan(&b.ID)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrDuplicateRef
		}
		return err
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (r *vendorBillRepo) Update(ctx context.Context, b *domain.VendorBill) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE vendor_bills
		SET vendor_id=$2, vendor_name=$3, date=$4, currency=$5, amount=$6, status=$7, job_number=$8, notes=$9, updated_at=$10
		WHERE id=$1
	`, b.ID, b.VendorID, b.VendorName, b.Date, b.Currency, b.Amount, b.Status, b.JobNumber, b.Notes, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrRecordNotFound
	}
	return nil
}

func (r *vendorBillRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vendor_bills WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrRecordNotFound
	}
	return nil
}

func (r *vendorBillRepo) GetByID(ctx context.Context, id int64) (*domain.VendorBill, error) {
	var b domain.VendorBill
	err := r.db.QueryRow(ctx, `
		SELECT id, bill_number, vendor_id, vendor_name, date, currency, amount, status, job_number, notes, created_at, updated_at
		FROM vendor_bills WHERE id=$1
	`, id).Scan(&b.ID, &b.BillNumber, &b.VendorID, &b.VendorName, &b.Date, &b.Currency,
		&b.Amount, &b.Status, &b.JobNumber, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrRecordNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *vendorBillRepo) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.VendorBill, error) {
	query := `
		SELECT id, bill_number, vendor_id, vendor_name, date, currency, amount, status, job_number, notes, created_at, updated_at
		FROM vendor_bills WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.PartyID != nil {
		query += fmt.Sprintf(" AND vendor_id=$%d", idx)
		args = append(args, *filter.PartyID)
		idx++
	}
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

	var bills []*domain.VendorBill
	for rows.Next() {
		var b domain.VendorBill
		if err := rows.Scan(&b.ID, &b.BillNumber, &b.VendorID, &b.VendorName, &b.Date, &b.Currency,
			&b.Amount, &b.Status, &b.JobNumber, &b.Notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, &b)
	}
	return bills, rows.Err()
}
