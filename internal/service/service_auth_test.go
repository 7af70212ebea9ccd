// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/invest-portal/internal/access"
	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "invest-portal",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthService(repo store.UserRepository) *authService {
	svc := NewAuthService(repo, validators.NewContentValidator(), validators.NewContentSanitizer(), testAppConfig, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_HashesPasswordAndDefaultsDisplayName(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.ID = 7
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), models.Registration{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice", user.DisplayName)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestAuthService_Register_SanitizesDisplayName(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	user, err := svc.Register(context.Background(), models.Registration{
		Username:    "bob",
		Password:    "pw",
		DisplayName: "<b>Bob</b>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bob", user.DisplayName)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), models.Registration{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrCredentialsRequired)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.Registration{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash := hashPassword(t, "correct")
	repo := &mockUserRepository{
		findByNameFn: func(_ context.Context, username string) (models.User, error) {
			if username == "alice" {
				return models.User{ID: 1, Username: "alice", PasswordHash: hash, DisplayName: "Alice"}, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "correct"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, wrongPassword := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "nope"})
		_, unknownUser := svc.Login(context.Background(), models.Credentials{Username: "mallory", Password: "nope"})

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})

	t.Run("blank credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.Credentials{Username: "", Password: ""})
		assert.ErrorIs(t, err, validators.ErrCredentialsRequired)
	})

	t.Run("overlong password is invalid credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: strings.Repeat("p", 73)})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("overlong username is invalid credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.Credentials{Username: strings.Repeat("a", 65), Password: "correct"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &mockUserRepository{
		findByNameFn: func(context.Context, string) (models.User, error) {
			return models.User{}, boom
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// IssueToken / ResolveIdentity
// ─────────────────────────────────────────────

func TestAuthService_IssueAndResolve(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	alice := models.User{ID: 1, Username: "alice", DisplayName: "Alice"}

	token, err := svc.IssueToken(context.Background(), alice)
	require.NoError(t, err)

	identity := svc.ResolveIdentity(context.Background(), "Bearer "+token)

	require.True(t, identity.Authenticated)
	assert.Equal(t, int64(1), identity.User.UserID)
	assert.Equal(t, "alice", identity.User.Username)
	assert.Equal(t, "Alice", identity.User.DisplayName)
	assert.ErrorIs(t, access.RequireAdmin(identity), access.ErrAdminAccessRequired)
}

func TestAuthService_ResolveIdentity_AdminClaim(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.IssueToken(context.Background(), models.User{ID: 2, Username: "root", IsAdmin: true})
	require.NoError(t, err)

	identity := svc.ResolveIdentity(context.Background(), "Bearer "+token)
	assert.NoError(t, access.RequireAdmin(identity))
}

func TestAuthService_ResolveIdentity_Failures(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	token, err := svc.IssueToken(context.Background(), models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	other := NewAuthService(&mockUserRepository{}, validators.NewContentValidator(), validators.NewContentSanitizer(),
		config.App{TokenSignKey: "other-key", TokenIssuer: "invest-portal", TokenDuration: time.Hour, PasswordHashCost: bcrypt.MinCost},
		logger.Nop()).(*authService)
	other.now = func() time.Time { return fixedNow }

	tests := []struct {
		name    string
		svc     *authService
		header  string
		wantErr error
	}{
		{name: "no header", svc: svc, header: "", wantErr: ErrMissingToken},
		{name: "wrong scheme", svc: svc, header: "Basic " + token, wantErr: ErrMissingToken},
		{name: "garbage token", svc: svc, header: "Bearer not-a-jwt", wantErr: ErrInvalidToken},
		{name: "foreign signature", svc: other, header: "Bearer " + token, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := tt.svc.ResolveIdentity(context.Background(), tt.header)
			assert.False(t, identity.Authenticated)
			assert.ErrorIs(t, identity.Err, tt.wantErr)
		})
	}
}

func TestAuthService_ResolveIdentity_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	token, err := svc.IssueToken(context.Background(), models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	svc.now = func() time.Time { return fixedNow.Add(2 * time.Hour) }
	identity := svc.ResolveIdentity(context.Background(), "Bearer "+token)

	assert.False(t, identity.Authenticated)
	assert.ErrorIs(t, identity.Err, ErrInvalidToken)
}

func TestAuthService_IssueToken_MissingKey(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	svc.tokenSignKey = ""

	_, err := svc.IssueToken(context.Background(), models.User{ID: 1, Username: "alice"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
