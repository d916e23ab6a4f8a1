// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"

	"postboard/config"
	"postboard/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface.
// The plaintext is first reduced to its raw SHA-256 digest so that passwords
// longer than bcrypt's 72 byte input limit still contribute every byte.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost.
// Costs outside bcrypt's supported range fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash of the password's SHA-256 digest.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest := prehash(password)
	bytes, err := bcrypt.GenerateFromPassword(digest[:], h.cost)

	return string(bytes), err
}

// Verify compares a plaintext password with a stored digest.
func (h *bcryptHasher) Verify(password, digest string) bool {
	sum := prehash(password)
	// err is nil only if the password matches; malformed digests also land here.
	return bcrypt.CompareHashAndPassword([]byte(digest), sum[:]) == nil
}

func prehash(password string) [sha256.Size]byte {
	return sha256.Sum256([]byte(password))
}
