package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/parleyhq/parley/internal/auth/store"
	"github.com/parleyhq/parley/internal/auth/validate"
	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/parleyhq/parley/pkg/slogx"
)

type RegistrationService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
}

// Register creates a new account and returns its id. It performs the
// following steps:
//  1. Normalizes the email and validates the input
//  2. Pre-checks the email for an existing account (friendly fast path)
//  3. Hashes the password
//  4. Creates the account; the store's unique index is the authoritative
//     duplicate check, so losing a concurrent race still yields ErrEmailTaken
//
// Neither the plaintext password nor the hash appears in the result or in
// any log line.
func (s *RegistrationService) Register(ctx context.Context, in validate.RegisterInput) (string, error) {
	log := slogx.FromContext(ctx)

	// Lower-casing before validation fixes the uniqueness policy: the store
	// only ever sees canonical emails.
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := validate.Registration(in); err != nil {
		return "", &ValidationError{Err: err}
	}

	_, err := s.Store.Accounts().GetAccountByEmail(ctx, in.Email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing account", slog.Any("error", err))
		return "", err
	}

	hash, err := s.Hasher.Hash(ctx, in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return "", err
	}

	account, err := s.Store.Accounts().CreateAccount(ctx, store.NewAccount{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a concurrent registration race after the pre-check passed.
			return "", ErrEmailTaken
		}
		log.Error("failed to create account", slog.Any("error", err))
		return "", err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
	)

	return account.ID, nil
}
