// Package repository contains data access logic separated from HTTP handlers.
// This file covers the `promotions` table. Promotions are created by admins
// and looked up at redemption time; there is no update or delete path, so
// expired codes simply accumulate and listing returns them too.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"github.com/skyops/airline-backoffice/internal/model"
)

// ErrPromoNotFound is returned when a promotion code cannot be found in the DB.
var ErrPromoNotFound = errors.New("promotion not found")

// ErrPromoCodeExists indicates a uniqueness violation on the code column.
var ErrPromoCodeExists = errors.New("promotion code already exists")

// PromotionRepo encapsulates all database queries related to promotions.
type PromotionRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewPromotionRepo constructs a PromotionRepo with the provided DB handle.
func NewPromotionRepo(db *sql.DB) *PromotionRepo {
	return &PromotionRepo{db: db}
}

// Create inserts a new promotion. On success the generated ID is
// populated on the struct. A duplicate code reports ErrPromoCodeExists
// and leaves no side effects behind.
func (r *PromotionRepo) Create(ctx context.Context, p *model.Promotion) error {
	const q = `INSERT INTO promotions (code, discount, expiration_date) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Code, p.Discount, p.ExpirationDate)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPromoCodeExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByCode fetches a promotion by its unique code. It returns
// ErrPromoNotFound if no row is found.
func (r *PromotionRepo) GetByCode(ctx context.Context, code string) (*model.Promotion, error) {
	const q = `SELECT promo_id, code, discount, expiration_date FROM promotions WHERE code = ?`
	var p model.Promotion
	if err := r.db.QueryRowContext(ctx, q, code).Scan(&p.ID, &p.Code, &p.Discount, &p.ExpirationDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListAll returns all promotions ordered by id, expired ones included;
// expiration filtering is the redemption flow's responsibility.
func (r *PromotionRepo) ListAll(ctx context.Context) ([]*model.Promotion, error) {
	const q = `SELECT promo_id, code, discount, expiration_date FROM promotions ORDER BY promo_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Promotion
	for rows.Next() {
		p := new(model.Promotion)
		if err := rows.Scan(&p.ID, &p.Code, &p.Discount, &p.ExpirationDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of promotion rows.
func (r *PromotionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM promotions`).Scan(&n)
	return n, err
}
