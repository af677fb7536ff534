package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
)

// TokenIssuer signs session tokens for register/login responses.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer for HS256 session tokens.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the user's ID and email, expiring after the
// configured TTL.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID:    user.ID,
		UserEmail: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// LocalTokenVerifier validates tokens signed by this service's TokenIssuer.
type LocalTokenVerifier struct {
	secret []byte
	logger *slog.Logger
}

// NewLocalVerifier creates a verifier for locally issued HS256 tokens.
func NewLocalVerifier(secret string, logger *slog.Logger) (TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	return &LocalTokenVerifier{secret: []byte(secret), logger: logger}, nil
}

// VerifyToken validates an HS256 session token and extracts its claims.
func (v *LocalTokenVerifier) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks - locally issued tokens are always HS256
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		v.logger.Debug("token parse failed", "error", err)
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if claims.GetUserID() == "" {
		v.logger.Debug("token missing user ID claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close is a no-op; local verification holds no resources.
func (v *LocalTokenVerifier) Close() error {
	return nil
}
