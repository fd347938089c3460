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

type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	Update(ctx context.Context, s *domain.Shipment) error
	UpdateStatus(ctx context.Context, id int64, status domain.ShipmentStatus) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Shipment, error)
	GetByJobNumber(ctx context.Context, jobNumber string) (*domain.Shipment, error)
	List(ctx context.Context, filter domain.ShipmentFilter) ([]*domain.Shipment, error)
}

type shipmentRepo struct {
	db *pgxpool.Pool
}

func NewShipmentRepo(db *pgxpool.Pool) ShipmentRepository {
	return &shipmentRepo{db: db}
}

const shipmentColumns = `id, job_number, direction, mode, customer_id, origin_port, dest_port,
	etd, eta, status, bl_number, description, created_at, updated_at`

func (r *shipmentRepo) Create(ctx context.Context, s *domain.Shipment) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO shipments (job_number, direction, mode, customer_id, origin_port, dest_port,
			etd, eta, status, bl_number, description, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$12)
		RETURNING id
	`, s.JobNumber, s.Direction, s.Mode, s.CustomerID, s.OriginPort, s.DestPort,
		s.ETD, s.ETA, s.Status, s.BLNumber, s.Description, now).Scan(&s.ID)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrDuplicateRef
		}
		return err
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

func (r *shipmentRepo) Update(ctx context.Context, s *domain.Shipment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE shipments
		SET direction=$2, mode=$3, customer_id=$4, origin_port=$5, dest_port=$6,
			etd=$7, eta=$8, status=$9, bl_number=$10, description=$11, updated_at=$12
		WHERE id=$1
	`, s.ID, s.Direction, s.Mode, s.CustomerID, s.OriginPort, s.DestPort,
		s.ETD, s.ETA, s.Status, s.BLNumber, s.Description, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrShipmentNotFound
	}
	return nil
}

func (r *shipmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.ShipmentStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE shipments SET status=$2, updated_at=$3 WHERE id=$1
	`, id, status, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrShipmentNotFound
	}
	return nil
}

func (r *shipmentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shipments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrShipmentNotFound
	}
	return nil
}

func (r *shipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Shipment, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id=$1`, id))
}

func (r *shipmentRepo) GetByJobNumber(ctx context.Context, jobNumber string) (*domain.Shipment, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE job_number=$1`, jobNumber))
}

func (r *shipmentRepo) scanOne(row pgx.Row) (*domain.Shipment, error) {
	var s domain.Shipment
	err := row.Scan(&s.ID, &s.JobNumber, &s.Direction, &s.Mode, &s.CustomerID, &s.OriginPort,
		&s.DestPort, &s.ETD, &s.ETA, &s.Status, &s.BLNumber, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *shipmentRepo) List(ctx context.Context, filter domain.ShipmentFilter) ([]*domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id=$%d", idx)
		args = append(args, *filter.CustomerID)
		idx++
	}
	if filter.Direction != nil {
		query += fmt.Sprintf(" AND direction=$%d", idx)
		args = append(args, *filter.Direction)
		idx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status=$%d", idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", idx)
		args = append(args, *filter.StartDate)
		idx++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", idx)
		args = append(args, *filter.EndDate)
		idx++
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shipments []*domain.Shipment
	for rows.Next() {
		var s domain.Shipment
		if err := rows.Scan(&s.ID, &s.JobNumber, &s.Direction, &s.Mode, &s.CustomerID, &s.OriginPort,
			&s.DestPort, &s.ETD, &s.ETA, &s.Status, &s.BLNumber, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		shipments = append(shipments, &s)
	}
	return shipments, rows.Err()
}
