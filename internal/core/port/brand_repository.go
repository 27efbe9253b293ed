package port

import (
	"context"
	"errors"

	"cuptrace/internal/core/domain"
)

var ErrEmailTaken = errors.New("email already registered")

// BrandRepository is the outbound persistence port for brand accounts.
type BrandRepository interface {
	// CreateBrand inserts a brand and fills its ID and CreatedAt. Returns
	// ErrEmailTaken when the email is already registered.
	CreateBrand(ctx context.Context, b *domain.Brand) error
	// GetBrandByEmail returns a brand by email, or nil when absent.
	GetBrandByEmail(ctx context.Context, email string) (*domain.Brand, error)
	// GetBrand returns a brand by id, or nil when absent.
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
}
