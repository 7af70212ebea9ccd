// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides request validation and user-content
// sanitization for the portal's services.
//
// Core concepts:
//   - Validator: validates a request model; named fields switch on optional
//     rules (a guest name, a group slug on create).
//   - Sanitizer: strips markup from user-supplied text before it is stored.
//
// Every validation failure is a *ValidationError so the HTTP layer can map
// the whole category to 400 with the failure's message.
package validators

import "context"

// Validator validates arbitrary input values. Each given field name enables
// the optional rule of that name.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// Sanitizer cleans user-supplied content.
type Sanitizer interface {
	// PlainText removes all markup and returns plain text.
	PlainText(s string) string
	// RichText keeps a safe subset of HTML.
	RichText(s string) string
}
