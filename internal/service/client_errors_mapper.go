// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/invest-portal/internal/access"
	"github.com/MKhiriev/invest-portal/internal/adapter"
	"github.com/MKhiriev/invest-portal/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == ErrInvalidCredentials.Error() {
			return ErrInvalidCredentials
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrForbidden):
		return access.ErrAdminAccessRequired

	case errors.Is(err, adapter.ErrNotFound):
		if msg == store.ErrContactMessageNotFound.Error() {
			return store.ErrContactMessageNotFound
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrServerRateLimited
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
