package service

import "postboard/internal/domain/entity"

// TokenService issues and validates signed, self-contained tokens.
type TokenService interface {
	// Issue creates a token of the given kind for subject.
	Issue(subject string, kind entity.TokenKind) (string, error)

	// Validate checks signature, expiry, subject and kind and returns the subject.
	// Failures are reported as TokenExpired, TokenInvalid, TokenMissingSubject
	// or TokenKindMismatch, checked in that order.
	Validate(token string, expected entity.TokenKind) (string, error)
}
