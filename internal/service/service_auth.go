// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification with bcrypt, and the
// JWT token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	sanitizer validators.Sanitizer

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// hashCost is the bcrypt cost used at registration.
	hashCost int

	// dummyHash is compared against when the username is unknown so that
	// both login failures take a bcrypt comparison.
	dummyHash []byte

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token and hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, sanitizer validators.Sanitizer, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("invest-portal-dummy-password"), cost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("failed to prepare dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		sanitizer:      sanitizer,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		hashCost:       cost,
		dummyHash:      dummyHash,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account with a bcrypt-hashed password.
//
// The display name defaults to the username. Returns the persisted user or:
//   - a *validators.ValidationError for missing or oversized credentials;
//   - store.ErrUsernameAlreadyExists if the username is taken.
func (a *authService) Register(ctx context.Context, registration models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, registration); err != nil {
		return models.User{}, err
	}

	displayName := a.sanitizer.PlainText(registration.DisplayName)
	if displayName == "" {
		displayName = registration.Username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     registration.Username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	})
	if err != nil {
		log.Err(err).Str("username", registration.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both return ErrInvalidCredentials.
// For an unknown username a comparison against a dummy hash still runs.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(credentials.Password))
		log.Debug().Str("username", credentials.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a bearer token for user carrying its id, username,
// display name and admin flag.
func (a *authService) IssueToken(ctx context.Context, user models.User) (string, error) {
	token, err := utils.GenerateJWTToken(models.NewClaims(user), a.tokenIssuer, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("token creation failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveIdentity turns an Authorization header into an identity without
// touching the store:
//   - no "Bearer <token>" header: anonymous with ErrMissingToken;
//   - token fails verification: anonymous with ErrInvalidToken;
//   - otherwise authenticated with the token's claims.
func (a *authService) ResolveIdentity(ctx context.Context, authorizationHeader string) models.Identity {
	token, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.Anonymous(ErrMissingToken)
	}

	claims, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("bearer token rejected")
		return models.Anonymous(ErrInvalidToken)
	}

	return models.Authenticated(claims)
}
