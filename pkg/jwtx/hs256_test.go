package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parleyhq/parley/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	signer, err := jwtx.NewSigner([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	for _, subject := range []string{
		"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		"another-account-id",
	} {
		token, err := signer.Issue(subject)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		got, err := signer.Verify(token)
		require.NoError(t, err)
		require.Equal(t, subject, got)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer, err := jwtx.NewSigner([]byte("secret-a"), time.Hour)
	require.NoError(t, err)
	other, err := jwtx.NewSigner([]byte("secret-b"), time.Hour)
	require.NoError(t, err)

	token, err := signer.Issue("some-account")
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	signer, err := jwtx.NewSigner(secret, time.Hour)
	require.NoError(t, err)

	// Mint an already-expired token with the same secret.
	claims := jwtx.NewClaims("some-account", -time.Minute, time.Now().UTC().Add(-time.Hour))
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = signer.Verify(expired)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer, err := jwtx.NewSigner([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := signer.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken, "input %q", raw)
	}
}

func TestNewSignerRequiresSecret(t *testing.T) {
	_, err := jwtx.NewSigner(nil, time.Hour)
	require.ErrorIs(t, err, jwtx.ErrNoSecret)
}
