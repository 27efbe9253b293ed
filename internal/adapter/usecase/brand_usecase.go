package usecase

import (
	"context"
	"errors"

	"cuptrace/internal/auth"
	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
)

// BrandService implements port.BrandUseCase: account registration, login and
// bearer-token resolution.
type BrandService struct {
	repo   port.BrandRepository
	tokens *auth.TokenIssuer
}

// NewBrandService creates the service.
func NewBrandService(repo port.BrandRepository, tokens *auth.TokenIssuer) *BrandService {
	return &BrandService{repo: repo, tokens: tokens}
}

// Register creates a brand account with a hashed password.
func (s *BrandService) Register(ctx context.Context, req port.RegisterReq) (*domain.Brand, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	b := &domain.Brand{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := s.repo.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Login verifies the credentials and issues a bearer token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *BrandService) Login(ctx context.Context, email, password string) (string, error) {
	b, err := s.repo.GetBrandByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if b == nil || !auth.VerifyPassword(password, b.PasswordHash) {
		return "", port.ErrInvalidCredentials
	}
	return s.tokens.Issue(b.ID, b.Email)
}

// Authenticate resolves a bearer token to the brand it was issued for.
func (s *BrandService) Authenticate(ctx context.Context, token string) (*domain.Brand, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	b, err := s.repo.GetBrand(ctx, claims.BrandID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errors.New("brand no longer exists")
	}
	return b, nil
}
