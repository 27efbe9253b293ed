package domain

import "time"

// Brand is an account that owns campaigns. Passwords are stored only as
// bcrypt hashes.
type Brand struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
