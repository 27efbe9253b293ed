package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuptrace/internal/config/configs"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("s3cret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

// Passwords longer than bcrypt's 72-byte limit must still hash and verify
// thanks to the sha256 pre-hash.
func TestPasswordLongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("x", 200)
	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(long, hash))
}

func TestTokenIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer(configs.Auth{SecretKey: "test-secret", TokenTTL: time.Hour})

	token, err := issuer.Issue(42, "brand@example.com")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.BrandID)
	assert.Equal(t, "brand@example.com", claims.Email)
}

func TestTokenExpires(t *testing.T) {
	issuer := NewTokenIssuer(configs.Auth{SecretKey: "test-secret", TokenTTL: time.Hour})
	token, err := issuer.Issue(1, "a@b.c")
	require.NoError(t, err)

	issuer.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Parse(token)
	require.Error(t, err)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(configs.Auth{SecretKey: "one", TokenTTL: time.Hour})
	other := NewTokenIssuer(configs.Auth{SecretKey: "two", TokenTTL: time.Hour})

	token, err := issuer.Issue(1, "a@b.c")
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
}
