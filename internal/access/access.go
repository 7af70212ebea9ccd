// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access holds the authorization decisions applied to resolved
// request identities. The functions are pure: they inspect their arguments
// and return nil (allow) or a sentinel error (deny).
package access

import (
	"errors"

	"github.com/MKhiriev/invest-portal/models"
)

var (
	// ErrAuthenticationRequired denies anonymous callers.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrAdminAccessRequired denies authenticated non-admin callers.
	ErrAdminAccessRequired = errors.New("admin access required")
	// ErrNotResourceOwner denies authenticated non-admin callers that do not
	// own the resource.
	ErrNotResourceOwner = errors.New("not authorized to modify this resource")
)

// RequireAuthenticated allows any authenticated caller.
func RequireAuthenticated(identity models.Identity) error {
	if !identity.Authenticated || identity.User == nil {
		return ErrAuthenticationRequired
	}

	return nil
}

// RequireAdmin allows only authenticated admins.
func RequireAdmin(identity models.Identity) error {
	if err := RequireAuthenticated(identity); err != nil {
		return err
	}

	if !identity.IsAdmin() {
		return ErrAdminAccessRequired
	}

	return nil
}

// RequireOwnerOrAdmin allows the owner of a resource or any admin.
//
// ownerID is nil for unowned resources (guest comments), which only admins
// may modify.
func RequireOwnerOrAdmin(identity models.Identity, ownerID *int64) error {
	if err := RequireAuthenticated(identity); err != nil {
		return err
	}

	if ownerID != nil && identity.User.UserID == *ownerID {
		return nil
	}

	if err := RequireAdmin(identity); err != nil {
		return ErrNotResourceOwner
	}

	return nil
}
