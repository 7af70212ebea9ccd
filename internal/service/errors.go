package service

import "errors"

var (
	// ErrMissingToken is the reason of an anonymous identity whose request
	// carried no "Bearer <token>" Authorization header.
	ErrMissingToken = errors.New("missing or invalid token")

	// ErrInvalidToken is the reason of an anonymous identity whose bearer
	// token failed verification. The cause is never exposed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrPasswordHashingFailed = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
