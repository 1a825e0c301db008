package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the session length handed out on login.
const DefaultAccessTokenTTL = time.Hour

// Claims are the access-token claims. Role and Department are read by the
// handlers to scope what a caller may see or change; Scopes drive the
// route-level authorization middleware.
type Claims struct {
	jwt.RegisteredClaims

	// Role is one of "student", "faculty" or "admin".
	Role string `json:"role"`

	// Department code of the user, upper-case. Empty for college-level admins.
	Department string `json:"department,omitempty"`

	// AdminLevel is "college" or "department" for admins.
	AdminLevel string `json:"admin_level,omitempty"`

	// Name is the display name, handy for report bylines.
	Name string `json:"name,omitempty"`

	Scopes []string `json:"scopes,omitempty"`
}

// NewAccessClaims builds claims for a freshly authenticated user.
func NewAccessClaims(
	subject, role, department, adminLevel, name string,
	scopes []string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role:       role,
		Department: department,
		AdminLevel: adminLevel,
		Name:       name,
		Scopes:     scopes,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether the claims carry scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiryWithLeeway checks exp and nbf allowing for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
