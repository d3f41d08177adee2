package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default bearer token lifetime.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the full claim set carried by issued tokens. The payload is kept
// to registered claims only; the subject is the account id and nothing about
// the account (email, name, hash material) rides along, so a leaked token
// identifies but does not describe its holder.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims builds the claim set for subject with the given lifetime.
func NewClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
