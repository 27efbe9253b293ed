package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
)

// CreateBrand inserts a brand account. A duplicate email maps to
// port.ErrEmailTaken.
func (r *Repository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO brands (name, email, password_hash)
VALUES ($1, $2, $3) RETURNING id, created_at`,
		b.Name, b.Email, b.PasswordHash).Scan(&b.ID, &b.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return port.ErrEmailTaken
	}
	return err
}

// GetBrandByEmail returns a brand by email, or nil when absent.
func (r *Repository) GetBrandByEmail(ctx context.Context, email string) (*domain.Brand, error) {
	var b domain.Brand
	err := r.pool.QueryRow(ctx, `SELECT id, name, email, password_hash, created_at
FROM brands WHERE email = $1`, email).
		Scan(&b.ID, &b.Name, &b.Email, &b.PasswordHash, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBrand returns a brand by id, or nil when absent.
func (r *Repository) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	var b domain.Brand
	err := r.pool.QueryRow(ctx, `SELECT id, name, email, password_hash, created_at
FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Email, &b.PasswordHash, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
