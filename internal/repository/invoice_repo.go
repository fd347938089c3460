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

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Invoice, error)
	ListByJob(ctx context.Context, jobNumber string) ([]*domain.Invoice, error)
}

type invoiceRepo struct {
	db *pgxpool.Pool
}

func NewInvoiceRepo(db *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepo{db: db}
}

const invoiceColumns = `id, invoice_number, party_type, party_id, party_name,
	customer_id, customer_name, vendor_id, vendor_name,
	date, currency, amount, amount_paid, status, job_number, notes, created_at, updated_at`

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO invoices (invoice_number, party_type, party_id, party_name,
			customer_id, customer_name, vendor_id, vendor_name,
			date, currency, amount, amount_paid, status, job_number, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$16)
		RETURNING id
	`, inv.InvoiceNumber, inv.PartyType, inv.PartyID, inv.PartyName,
		inv.CustomerID, inv.CustomerName, inv.VendorID, inv.VendorName,
		inv.Date, inv.Currency, inv.Amount, inv.AmountPaid, inv.Status,
		inv.JobNumber, inv.Notes, now).Scan(&inv.ID)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrDuplicateRef
		}
		return err
	}
	inv.CreatedAt = now
	inv.UpdatedAt = now
	return nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE invoices
		SET party_type=$2, party_id=$3, party_name=$4, customer_id=$5, customer_name=$6,
			vendor_id=$7, vendor_name=$8, date=$9, currency=$10, amount=$11,
			amount_paid=$12, status=$13, job_number=$14, notes=$15, updated_at=$16
		WHERE id=$1
	`, inv.ID, inv.PartyType, inv.PartyID, inv.PartyName, inv.CustomerID, inv.CustomerName,
		inv.VendorID, inv.VendorName, inv.Date, inv.Currency, inv.Amount,
		inv.AmountPaid, inv.Status, inv.JobNumber, inv.Notes, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrRecordNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrRecordNotFound
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrRecordNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.PartyID != nil {
		query += fmt.Sprintf(" AND (party_id=$%d OR customer_id=$%d OR vendor_id=$%d)", idx, idx, idx)
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

	var invoices []*domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepo) ListByJob(ctx context.Context, jobNumber string) ([]*domain.Invoice, error) {
	return r.List(ctx, domain.RecordFilter{JobNumber: &jobNumber})
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.PartyType, &inv.PartyID, &inv.PartyName,
		&inv.CustomerID, &inv.CustomerName, &inv.VendorID, &inv.VendorName,
		&inv.Date, &inv.Currency, &inv.Amount, &inv.AmountPaid, &inv.Status,
		&inv.JobNumber, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
