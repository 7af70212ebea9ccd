// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the admin client to talk to
// the portal API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/invest-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the portal API.
// Implementations attach the stored bearer token to authenticated requests
// and map transport-level errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login authenticates with username and password and stores the issued
	// token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CurrentUser returns the identity behind the stored token.
	CurrentUser(ctx context.Context) (models.User, error)

	// ServerVersion returns the version reported by the API.
	ServerVersion(ctx context.Context) (string, error)

	// ListContactMessages returns every contact message, newest first.
	// Requires an admin token.
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)

	// SetContactMessageRead marks a contact message read or unread.
	SetContactMessageRead(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error)

	// DeleteContactMessage removes a contact message.
	DeleteContactMessage(ctx context.Context, id int64) error
}
