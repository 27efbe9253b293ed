package port

import (
	"context"
	"errors"

	"cuptrace/internal/core/domain"
)

var ErrInvalidCredentials = errors.New("incorrect email or password")

// BrandUseCase covers brand registration and bearer-token authentication.
// It is a collaborator of the campaign domain, not part of it: campaign
// operations only need the resolved principal id.
type BrandUseCase interface {
	// Register creates a brand account with a hashed password.
	Register(ctx context.Context, req RegisterReq) (*domain.Brand, error)
	// Login verifies the credentials and issues a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate resolves a bearer token to the brand it was issued for.
	Authenticate(ctx context.Context, token string) (*domain.Brand, error)
}

type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
