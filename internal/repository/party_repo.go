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

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByCode(ctx context.Context, code string) (*domain.Customer, error)
	List(ctx context.Context, filter domain.PartyFilter) ([]*domain.Customer, error)
}

type customerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO customers (code, name, contact_email, phone, country, payment_terms, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
		RETURNING id
	`, c.Code, c.Name, c.ContactEmail, c.Phone, c.Country, c.PaymentTerms, c.IsActive, now).Scan(&c.ID)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrDuplicateRef
		}
		return err
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers
		SET name=$2, contact_email=$3, phone=$4, country=$5, payment_terms=$6, is_active=$7, updated_at=$8
		WHERE id=$1
	`, c.ID, c.Name, c.ContactEmail, c.Phone, c.Country, c.PaymentTerms, c.IsActive, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, code, name, contact_email, phone, country, payment_terms, is_active, created_at, updated_at
		FROM customers WHERE id=$1
	`, id))
}

func (r *customerRepo) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, code, name, contact_email, phone, country, payment_terms, is_active, created_at, updated_at
		FROM customers WHERE code=$1
	`, code))
}

func (r *customerRepo) scanOne(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.ContactEmail, &c.Phone, &c.Country,
		&c.PaymentTerms, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, filter domain.PartyFilter) ([]*domain.Customer, error) {
	query := `
		SELECT id, code, name, contact_email, phone, country, payment_terms, is_active, created_at, updated_at
		FROM customers WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.Country != nil {
		query += fmt.Sprintf(" AND country=$%d", idx)
		args = append(args, *filter.Country)
		idx++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND is_active=$%d", idx)
		args = append(args, *filter.IsActive)
		idx++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR code ILIKE $%d)", idx, idx)
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}

	query += " ORDER BY name ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.ContactEmail, &c.Phone, &c.Country,
			&c.PaymentTerms, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

type VendorRepository interface {
	Create(ctx context.Context, v *domain.Vendor) error
	Update(ctx context.Context, v *domain.Vendor) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	GetByCode(ctx context.Context, code string) (*domain.Vendor, error)
	List(ctx context.Context, filter domain.PartyFilter) ([]*domain.Vendor, error)
}

type vendorRepo struct {
	db *pgxpool.Pool
}

func NewVendorRepo(db *pgxpool.Pool) VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, v *domain.Vendor) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO vendors (code, name, service_type, contact_email, phone, country, payment_terms, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
		RETURNING id
	`, v.Code, v.Name, v.ServiceType, v.ContactEmail, v.Phone, v.Country, v.PaymentTerms, v.IsActive, now).Scan(&v.ID)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrDuplicateRef
		}
		return err
	}
	v.CreatedAt = now
	v.UpdatedAt = now
	return nil
}

func (r *vendorRepo) Update(ctx context.Context, v *domain.Vendor) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE vendors
		SET name=$2, service_type=$3, contact_email=$4, phone=$5, country=$6, payment_terms=$7, is_active=$8, updated_at=$9
		WHERE id=$1
	`, v.ID, v.Name, v.ServiceType, v.ContactEmail, v.Phone, v.Country, v.PaymentTerms, v.IsActive, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrVendorNotFound
	}
	return nil
}

func (r *vendorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrVendorNotFound
	}
	return nil
}

func (r *vendorRepo) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, code, name, service_type, contact_email, phone, country, payment_terms, is_active, created_at, updated_at
		FROM vendors WHERE id=$1
	`, id))
}

func (r *vendorRepo) GetByCode(ctx context.Context, code string) (*domain.Vendor, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, code, name, service_type, contact_email, phone, country, payment_terms, is_active, created_at, updated_at
		FROM vendors WHERE code=$1
	`, code))
}

func (r *vendorRepo) scanOne(row pgx.Row) (*domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(&v.ID, &v.Code, &v.Name, &v.ServiceType, &v.ContactEmail, &v.Phone,
		&v.Country, &v.PaymentTerms, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrVendorNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *vendorRepo) List(ctx context.Context, filter domain.PartyFilter) ([]*domain.Vendor, error) {
	query := `
		SELECT id, code, name, service_type, contact_email, phone, country, payment_terms, is_active, created_at, updated_at
		FROM vendors WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.Country != nil {
		query += fmt.Sprintf(" AND country=$%d", idx)
		args = append(args, *filter.Country)
		idx++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND is_active=$%d", idx)
		args = append(args, *filter.IsActive)
		idx++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR code ILIKE $%d)", idx, idx)
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}

	query += " ORDER BY name ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []*domain.Vendor
	for rows.Next() {
		var v domain.Vendor
		if err := rows.Scan(&v.ID, &v.Code, &v.Name, &v.ServiceType, &v.ContactEmail, &v.Phone,
			&v.Country, &v.PaymentTerms, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vendors = append(vendors, &v)
	}
	return vendors, rows.Err()
}
