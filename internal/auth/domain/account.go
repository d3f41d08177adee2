package domain

import "time"

// Account is the persisted identity record, keyed by email.
type Account struct {
	ID           string
	Name         string
	Email        string // always stored lower-case; uniqueness is case-insensitive
	PasswordHash string // bcrypt encoded, never the plaintext
	Avatar       string
	IsOnline     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
