// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with a stored digest in constant time.
	// A malformed digest never verifies.
	Verify(password, digest string) bool
}
