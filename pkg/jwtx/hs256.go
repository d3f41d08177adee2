package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret reports a missing signing secret. This is a configuration
	// fault, not a per-request condition.
	ErrNoSecret = errors.New("jwtx: signing secret is empty")

	// ErrInvalidToken reports a token that failed signature or claim checks.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// Signer issues and verifies HS256-signed bearer tokens with a shared
// symmetric secret. The secret is injected at construction and never
// rotated mid-process.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner builds a Signer from the process-wide secret. An empty secret is
// rejected here so a misconfigured process fails at startup rather than on
// the first login.
func NewSigner(secret []byte, ttl time.Duration) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Signer{secret: secret, ttl: ttl}, nil
}

// Issue signs a token for subject using the configured lifetime.
func (s *Signer) Issue(subject string) (string, error) {
	claims := NewClaims(subject, s.ttl, time.Now().UTC())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and registered claims of raw and returns the
// subject. Anyone holding the shared secret can perform this check.
func (s *Signer) Verify(raw string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// Ready reports whether the signer holds a usable secret.
func (s *Signer) Ready() bool { return s != nil && len(s.secret) > 0 }
