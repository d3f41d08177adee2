package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/parleyhq/parley/internal/auth/domain"
	"github.com/parleyhq/parley/internal/auth/store"
	"github.com/parleyhq/parley/internal/auth/validate"
	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/parleyhq/parley/pkg/jwtx"
	"github.com/parleyhq/parley/pkg/slogx"
)

// Session is the result of a successful login: the account as stored, plus
// a freshly minted bearer token for it.
type Session struct {
	Account domain.Account
	Token   string
}

type LoginService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Signer *jwtx.Signer
}

// Login authenticates a caller and mints a bearer token. Nothing is mutated
// on either outcome; the account record is read-only here.
func (s *LoginService) Login(ctx context.Context, in validate.LoginInput) (Session, error) {
	log := slogx.FromContext(ctx)

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := validate.Login(in); err != nil {
		return Session{}, &ValidationError{Err: err}
	}

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrEmailNotFound
		}
		log.Error("failed to look up account", slog.Any("error", err))
		return Session{}, err
	}

	if err := s.Hasher.Verify(ctx, in.Password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			// Logged without the submitted password.
			log.Info("login rejected: wrong password",
				slog.String("account_id", account.ID),
			)
			return Session{}, ErrInvalidPassword
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return Session{}, err
	}

	token, err := s.Signer.Issue(account.ID)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("login succeeded",
		slog.String("account_id", account.ID),
	)

	return Session{Account: account, Token: token}, nil
}
