package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/crm-service/internal/domain"
)

// SaleTotals aggregates sales figures for the dashboard.
type SaleTotals struct {
	Count       int64
	TotalAmount float64
}

// SaleRepository encapsulates sale persistence.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	Update(ctx context.Context, sale *domain.Sale) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	Totals(ctx context.Context) (SaleTotals, error)
}

type saleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository instantiates repository.
func NewSaleRepository(pool *pgxpool.Pool) SaleRepository {
	return &saleRepository{pool: pool}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO sales (id, customer_id, amount, status, date, assigned_rep_id, created_by, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		sale.ID,
		sale.CustomerID,
		sale.Amount,
		sale.Status,
		sale.Date,
		sale.AssignedRepID,
		sale.CreatedBy,
		sale.Notes,
	).Scan(&sale.CreatedAt)
}

func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	const query = `
        UPDATE sales SET customer_id=$1, amount=$2, status=$3, date=$4, assigned_rep_id=$5, notes=$6
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		sale.CustomerID,
		sale.Amount,
		sale.Status,
		sale.Date,
		sale.AssignedRepID,
		sale.Notes,
		sale.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *saleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	const query = `
        SELECT id, customer_id, amount, status, date, assigned_rep_id, created_by, notes, created_at
        FROM sales WHERE id=$1`

	var sale domain.Sale
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sale.ID,
		&sale.CustomerID,
		&sale.Amount,
		&sale.Status,
		&sale.Date,
		&sale.AssignedRepID,
		&sale.CreatedBy,
		&sale.Notes,
		&sale.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	const query = `
        SELECT id, customer_id, amount, status, date, assigned_rep_id, created_by, notes, created_at
        FROM sales ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.CustomerID,
			&sale.Amount,
			&sale.Status,
			&sale.Date,
			&sale.AssignedRepID,
			&sale.CreatedBy,
			&sale.Notes,
			&sale.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, sale)
	}
	return result, rows.Err()
}

func (r *saleRepository) Totals(ctx context.Context) (SaleTotals, error) {
	var totals SaleTotals
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM sales`).
		Scan(&totals.Count, &totals.TotalAmount)
	return totals, err
}
