// Package auth provides password hashing and bearer-token signing for brand
// accounts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cuptrace/internal/config/configs"
)

// Claims are the validated contents of a brand bearer token.
type Claims struct {
	jwt.RegisteredClaims
	BrandID int64  `json:"brand_id"`
	Email   string `json:"email"`
}

// TokenIssuer signs and verifies HS256 bearer tokens. Now is injectable for
// tests and defaults to time.Now.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	Now    func() time.Time
}

// NewTokenIssuer builds an issuer from the auth configuration.
func NewTokenIssuer(cfg configs.Auth) *TokenIssuer {
	return &TokenIssuer{secret: []byte(cfg.SecretKey), ttl: cfg.TokenTTL, Now: time.Now}
}

// Issue signs a token for the given brand.
func (i *TokenIssuer) Issue(brandID int64, email string) (string, error) {
	now := i.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		BrandID: brandID,
		Email:   email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies a token's signature and expiry and returns its claims.
func (i *TokenIssuer) Parse(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return i.Now() }),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if claims.BrandID == 0 {
		return nil, errors.New("token has no brand id")
	}
	return &claims, nil
}
