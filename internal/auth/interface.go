package auth

import "ideavault/internal/domain/models"

// TokenVerifier validates bearer tokens and extracts session claims.
type TokenVerifier interface {
	// VerifyToken validates a JWT and returns its claims.
	// Returns domain.ErrUnauthorized for any invalid, expired, or
	// wrongly signed token.
	VerifyToken(tokenString string) (*models.SessionClaims, error)

	// Close releases resources held by the verifier.
	Close() error
}
