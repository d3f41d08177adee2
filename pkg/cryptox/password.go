package cryptox

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultCost is the bcrypt work factor. Cost 10 takes roughly 50-100ms
	// on commodity hardware, which keeps login p99 reasonable while staying
	// expensive for offline brute force.
	DefaultCost = 10

	// DefaultMaxConcurrent bounds how many hash or verify operations run at
	// once. bcrypt is CPU-bound; without a bound a burst of registrations
	// would starve every other request of CPU time.
	DefaultMaxConcurrent = 8
)

var (
	// ErrMismatch reports that the password does not match the stored hash.
	ErrMismatch = errors.New("cryptox: password does not match")

	// ErrEmptyPassword reports an attempt to hash an empty string. Inputs are
	// validated before hashing; hitting this is a programming error upstream.
	ErrEmptyPassword = errors.New("cryptox: refusing to hash empty password")
)

// Hasher hashes and verifies passwords with bcrypt. The salt is generated
// per call and embedded in the output, so verification needs only the
// encoded hash. Both operations are gated through a weighted semaphore so
// concurrent requests never pile unbounded bcrypt work onto the scheduler.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher returns a Hasher with the given work factor and concurrency
// bound. Cost must be within bcrypt's supported range.
func NewHasher(cost, maxConcurrent int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("cryptox: bcrypt cost %d out of range [%d,%d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}

	return &Hasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}, nil
}

// Hash returns the bcrypt hash of password. It blocks while the concurrency
// bound is saturated and honours ctx cancellation while waiting.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	// Acquire may succeed on a done context when capacity is free; the
	// explicit check keeps cancellation prompt either way.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares password against encodedHash. bcrypt performs the
// comparison in constant time with respect to the hash contents. A mismatch
// returns ErrMismatch; any other error means the stored hash is malformed.
func (h *Hasher) Verify(ctx context.Context, password, encodedHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}

// Cost reports the configured work factor.
func (h *Hasher) Cost() int { return h.cost }
