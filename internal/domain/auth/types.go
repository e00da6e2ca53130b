// Package auth contains domain-level types for roles and request credentials.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application authorization role.
// Keep string form for easy cookie round-tripping.
// Valid values are defined as constants below; anything else is treated as
// "no role" by consuming code.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleVendor   Role = "VENDOR"
	RoleDelivery Role = "DELIVERY"
	RoleClient   Role = "CLIENT"
)

// ParseRole maps a raw cookie value to a Role. Unrecognized values fail
// closed: the second return is false and the caller must treat the role as
// absent rather than pass the raw value through.
func ParseRole(raw string) (Role, bool) {
	switch r := Role(raw); r {
	case RoleAdmin, RoleVendor, RoleDelivery, RoleClient:
		return r, true
	}
	return "", false
}

// Credentials are the per-request credential values the gate decides on.
// Token is opaque; only its presence matters, its content is never validated.
// Role is set only when the raw value parsed to a valid Role.
type Credentials struct {
	Token string
	Role  Role
}

// HasToken reports whether an access token accompanied the request.
func (c Credentials) HasToken() bool { return c.Token != "" }

// HasRole reports whether a recognized role accompanied the request.
func (c Credentials) HasRole() bool { return c.Role != "" }

// Session is the server-side record the session-backed credential source
// resolves an access token against. The gate core never sees sessions; it
// only sees the Credentials derived from one.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
