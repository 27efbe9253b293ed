package configs

import "time"

// Auth configures bearer-token issuance. SecretKey signs tokens with HS256;
// the default exists only so local development works out of the box.
type Auth struct {
	SecretKey string `env:"SECRET_KEY" envDefault:"dev-secret-key-change-me"`
	// TokenTTL is the bearer token lifetime. Defaults to one week.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}
