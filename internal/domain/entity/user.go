// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can author posts, comments and likes.
type User struct {
	ID           int64     // Store-assigned identifier.
	Email        string    // Unique, case-sensitive login identifier.
	PasswordHash string    // bcrypt digest of the SHA-256 of the plaintext password.
	Confirmed    bool      // Set once the confirmation link has been followed.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}
