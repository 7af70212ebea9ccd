package service

import (
	"context"

	"github.com/MKhiriev/invest-portal/models"
)

// ClientAuthService defines the admin client's session contract. The token
// issued by the API lives in the server adapter.
type ClientAuthService interface {
	// Login authenticates against the API. Accounts without the admin flag
	// are rejected with ErrAdminRequired and their token is discarded.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout discards the stored token. The API keeps no session state.
	Logout()

	// ServerVersion returns the version string reported by the API.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientInboxService defines the admin client's operations on contact
// messages. Every call requires a prior successful Login.
type ClientInboxService interface {
	// Messages returns every contact message, newest first.
	Messages(ctx context.Context) ([]models.ContactMessage, error)

	// SetRead marks the message read or unread and returns its new state.
	SetRead(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error)

	// Delete removes the message.
	Delete(ctx context.Context, id int64) error
}
