package service

import "errors"

var (
	// ErrAdminRequired is returned by the client Login for accounts without
	// the admin flag.
	ErrAdminRequired = errors.New("administrator account required")

	// ErrSessionExpired means the API rejected the stored token.
	ErrSessionExpired = errors.New("session expired, log in again")

	ErrServerRateLimited = errors.New("too many attempts, try again later")
)
