// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"postboard/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Failures of the store itself are reported as domain StoreError values.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their exact email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and fills in its ID.
	// A unique-constraint violation on email is reported as DuplicateIdentity.
	Create(ctx context.Context, user *entity.User) error

	// MarkConfirmed sets the confirmed flag. Confirming twice is not an error.
	MarkConfirmed(ctx context.Context, id int64) error
}
