package store

import (
	"context"
	"errors"

	"github.com/parleyhq/parley/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// NewAccount carries the fields the registration flow provides. The driver
// assigns the id and the timestamps at creation time.
type NewAccount struct {
	Name         string
	Email        string // callers must pass the lower-cased form
	PasswordHash string
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used for the duplicate pre-check and during login.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account and returns the persisted row.
	// The insert is atomic: a concurrent create with the same email loses
	// against the unique index and gets ErrAlreadyExists. This rejection is
	// the authoritative duplicate signal; any earlier lookup is only an
	// optimization for a friendlier error.
	CreateAccount(ctx context.Context, a NewAccount) (domain.Account, error)
}
