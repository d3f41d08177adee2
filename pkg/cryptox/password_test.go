package cryptox_test

import (
	"context"
	"testing"

	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests use MinCost so the suite stays fast; the cost factor does not change
// hashing semantics, only the work factor.
func newTestHasher(t *testing.T) *cryptox.Hasher {
	t.Helper()

	h, err := cryptox.NewHasher(bcrypt.MinCost, 2)
	require.NoError(t, err)
	return h
}

func TestHashRoundTrip(t *testing.T) {
	ctx := context.Background()
	h := newTestHasher(t)

	hash, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.NoError(t, h.Verify(ctx, "secret1", hash))
	require.ErrorIs(t, h.Verify(ctx, "secret2", hash), cryptox.ErrMismatch)
}

func TestHashSaltUniqueness(t *testing.T) {
	ctx := context.Background()
	h := newTestHasher(t)

	first, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)
	second, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)

	// Per-call random salt means two hashes of the same password differ,
	// yet both verify.
	require.NotEqual(t, first, second)
	require.NoError(t, h.Verify(ctx, "secret1", first))
	require.NoError(t, h.Verify(ctx, "secret1", second))
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	h := newTestHasher(t)

	_, err := h.Hash(context.Background(), "")
	require.ErrorIs(t, err, cryptox.ErrEmptyPassword)
}

func TestHashHonoursCancelledContext(t *testing.T) {
	h := newTestHasher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "secret1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestVerifyMalformedHash(t *testing.T) {
	h := newTestHasher(t)

	err := h.Verify(context.Background(), "secret1", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.NotErrorIs(t, err, cryptox.ErrMismatch)
}

func TestNewHasherRejectsBadCost(t *testing.T) {
	_, err := cryptox.NewHasher(bcrypt.MaxCost+1, 2)
	require.Error(t, err)
}
