package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT claims structure issued by this service on
// register/login. UserID duplicates the subject claim under the name the
// frontend has always read.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// GetUserID returns the authenticated user's ID, preferring the explicit
// userId claim and falling back to the subject for externally issued tokens.
func (c *SessionClaims) GetUserID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}
