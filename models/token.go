package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the fixed-shape payload of a portal bearer token.
//
// The registered claims carry "iss", "iat" and "exp". Unknown payload fields
// are ignored on decode.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the "id" claim. It is named UserID so it does not shadow
	// RegisteredClaims.ID ("jti").
	UserID      int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	IsAdmin     bool   `json:"isAdmin"`
}

// NewClaims derives the identity claims of u. Timing and issuer claims are
// filled in by the token codec.
func NewClaims(u User) Claims {
	return Claims{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin,
	}
}

// User returns the claims as a user view. CreatedAt is unknown to the token
// and left zero.
func (c Claims) User() User {
	return User{
		ID:          c.UserID,
		Username:    c.Username,
		DisplayName: c.DisplayName,
		IsAdmin:     c.IsAdmin,
	}
}

// Identity is the per-request result of resolving the Authorization header.
//
// Exactly one of the following holds:
//   - Authenticated is true and User is set;
//   - Authenticated is false and Err says why (missing or invalid token).
type Identity struct {
	Authenticated bool
	User          *Claims
	Err           error
}

// Anonymous returns an unauthenticated identity carrying reason.
func Anonymous(reason error) Identity {
	return Identity{Err: reason}
}

// Authenticated returns an identity for verified claims.
func Authenticated(c *Claims) Identity {
	return Identity{Authenticated: true, User: c}
}

// IsAdmin reports whether the identity is an authenticated admin.
func (i Identity) IsAdmin() bool {
	return i.Authenticated && i.User != nil && i.User.IsAdmin
}

// UserID returns the authenticated user's id, or nil for anonymous callers.
func (i Identity) UserID() *int64 {
	if !i.Authenticated || i.User == nil {
		return nil
	}
	id := i.User.UserID
	return &id
}
