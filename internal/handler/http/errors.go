// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced by the transport layer itself. Their text is the "error"
// field of the response body.
var (
	ErrEndpointNotFound = errors.New("API endpoint not found")
	ErrInternalServer   = errors.New("internal server error")
	ErrTooManyRequests  = errors.New("too many requests, try again later")
)
