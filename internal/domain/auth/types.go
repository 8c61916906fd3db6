package auth

// Package auth contains domain-level types for StreamWave identities and
// sessions. It is pure and free of transport/storage concerns.

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role represents a StreamWave authorization role.
// Keep string form for easy persistence and serialization.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleCreator  Role = "creator"
	RoleAdmin    Role = "admin"
)

// ParseRole normalizes a role string to a known Role.
// Unknown values are returned as-is with ok=false so callers can decide
// whether to reject or pass through.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleConsumer:
		return RoleConsumer, true
	case RoleCreator:
		return RoleCreator, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return Role(s), false
	}
}

// UserSummary is the identity the backend returns on login and the client
// persists alongside the bearer token.
type UserSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UserRecord is the account record returned by registration and by the
// admin user listing. Status is backend-owned; the client only displays it.
type UserRecord struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session pairs the bearer token with the identity it authenticates.
// Invariant: a token is only meaningful alongside its user record; the
// session store writes and clears both together.
type Session struct {
	User  UserSummary
	Token string
}

// TokenExpiry reports the expiry claim of a bearer token when the token is
// a JWT. The claim is read without signature verification: the client never
// trusts the token for authorization decisions, it only surfaces expiry for
// display. Opaque tokens report ok=false.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
