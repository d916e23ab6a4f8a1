package entity

// TokenKind distinguishes what a signed token may be used for.
type TokenKind string

const (
	TokenKindAccess       TokenKind = "access"
	TokenKindConfirmation TokenKind = "confirmation"
)

// Valid reports whether k is one of the known token kinds.
func (k TokenKind) Valid() bool {
	return k == TokenKindAccess || k == TokenKindConfirmation
}
