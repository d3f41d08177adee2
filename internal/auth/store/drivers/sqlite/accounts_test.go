package sqlite_test

import (
	"context"
	"testing"

	"github.com/parleyhq/parley/internal/auth/store"
	"github.com/parleyhq/parley/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestCreateAndLookupAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	created, err := st.Accounts().CreateAccount(ctx, store.NewAccount{
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Ann", created.Name)
	require.Equal(t, "ann@x.com", created.Email)
	require.False(t, created.CreatedAt.IsZero())

	// Store-managed profile fields start at their defaults.
	require.Empty(t, created.Avatar)
	require.False(t, created.IsOnline)

	byEmail, err := st.Accounts().GetAccountByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := st.Accounts().GetAccountByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", byID.Email)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	first := store.NewAccount{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash-a"}
	_, err := st.Accounts().CreateAccount(ctx, first)
	require.NoError(t, err)

	second := store.NewAccount{Name: "Other Ann", Email: "ann@x.com", PasswordHash: "hash-b"}
	_, err = st.Accounts().CreateAccount(ctx, second)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestLookupMissingAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Accounts().GetAccountByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Accounts().GetAccountByID(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.ErrorIs(t, err, store.ErrNotFound)
}
