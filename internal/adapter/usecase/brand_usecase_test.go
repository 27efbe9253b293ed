package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cuptrace/internal/auth"
	"cuptrace/internal/config/configs"
	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
	"cuptrace/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer(configs.Auth{SecretKey: "test-secret", TokenTTL: time.Hour})
}

// TestRegisterAndLogin walks the account lifecycle: register hashes the
// password, login verifies it and issues a token that resolves back to the
// brand.
func TestRegisterAndLogin(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	svc := NewBrandService(repo, testIssuer())

	var stored *domain.Brand
	repo.EXPECT().
		CreateBrand(mock.Anything, mock.AnythingOfType("*domain.Brand")).
		Run(func(ctx context.Context, b *domain.Brand) {
			b.ID = 5
			stored = b
		}).
		Return(nil)

	b, err := svc.Register(context.Background(), port.RegisterReq{
		Name:     "Acme",
		Email:    "acme@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if b.PasswordHash == "hunter22" || b.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}

	repo.EXPECT().
		GetBrandByEmail(mock.Anything, "acme@example.com").
		Return(stored, nil)

	token, err := svc.Login(context.Background(), "acme@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	repo.EXPECT().
		GetBrand(mock.Anything, int64(5)).
		Return(stored, nil)

	got, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("expected brand 5, got %d", got.ID)
	}
}

// TestLoginRejectsBadCredentials ensures a wrong password and an unknown
// email produce the same error.
func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	svc := NewBrandService(repo, testIssuer())

	hash, err := auth.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	repo.EXPECT().
		GetBrandByEmail(mock.Anything, "acme@example.com").
		Return(&domain.Brand{ID: 5, Email: "acme@example.com", PasswordHash: hash}, nil).
		Once()
	repo.EXPECT().
		GetBrandByEmail(mock.Anything, "nobody@example.com").
		Return(nil, nil).
		Once()

	if _, err := svc.Login(context.Background(), "acme@example.com", "wrong"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

// TestAuthenticateRejectsGarbage ensures malformed tokens never resolve.
func TestAuthenticateRejectsGarbage(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	svc := NewBrandService(repo, testIssuer())

	if _, err := svc.Authenticate(context.Background(), "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
