// Package utils provides helpers shared across the server and client:
// typed context keys, JSON response writing, the resty HTTP client, JWT
// issuance and verification, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/invest-portal/models"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey stores the resolved models.Identity of the current request.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext returns the identity stored by WithIdentity. A
// context without one yields an anonymous identity and ok == false.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
