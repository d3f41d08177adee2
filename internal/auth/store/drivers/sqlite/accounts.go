package sqlite

import (
	"context"
	"database/sql"

	"github.com/parleyhq/parley/internal/auth/domain"
	"github.com/parleyhq/parley/internal/auth/store"
	"github.com/parleyhq/parley/pkg/idx"
)

const accountColumns = `id, name, email, password_hash, avatar, is_online, created_at, updated_at`

type accountsRepo struct {
	db *sql.DB
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a store.NewAccount) (domain.Account, error) {
	id := idx.New().String()

	// The unique index on email makes this insert the single enforcement
	// point for duplicates; losing the race surfaces as ErrAlreadyExists.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, email, password_hash) VALUES (?, ?, ?, ?)`,
		id, a.Name, a.Email, a.PasswordHash)
	if err != nil {
		return domain.Account{}, mapConflict(err)
	}

	return r.GetAccountByID(ctx, id)
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Avatar,
		&a.IsOnline,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
