package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

func newTestAdapter(t *testing.T, baseURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    baseURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "keeps https", raw: "https://portal.example", want: "https://portal.example"},
		{name: "trims slash and spaces", raw: "  http://localhost:8080/ ", want: "http://localhost:8080"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	assert.Empty(t, a.Token())

	a.SetToken("  abc  ")
	assert.Equal(t, "abc", a.Token())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.User{ID: 7, Username: "admin", IsAdmin: true}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "admin", Password: "secret"}, creds)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{Message: "login successful", User: want, Token: "jwt-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "admin", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid username or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "admin"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid username or password")
	assert.Empty(t, a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: models.User{ID: 1}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "admin"})

	assert.ErrorIs(t, err, errEmptyToken)
}

func TestLogin_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		writeJSON(t, w, http.StatusTooManyRequests, models.ErrorResponse{Error: "too many requests"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "admin"})

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// ── authenticated calls ──────────────────────────────────────────────────────

func TestCurrentUser_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.User{ID: 3, Username: "root", IsAdmin: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	user, err := a.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.True(t, user.IsAdmin)
}

func TestCurrentUser_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestListContactMessages(t *testing.T) {
	messages := []models.ContactMessage{
		{ID: 2, Name: "Ann", Email: "ann@example.com", Message: "hi"},
		{ID: 1, Name: "Bob", Email: "bob@example.com", Message: "hello", IsRead: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.NewListResponse(messages))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.ListContactMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ann@example.com", got[0].Email)
	assert.True(t, got[1].IsRead)
}

func TestListContactMessages_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "admin access required"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListContactMessages(context.Background())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetContactMessageRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/contact/5", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"isRead": true}, body)

		writeJSON(t, w, http.StatusOK, models.ContactMessage{ID: 5, IsRead: true})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SetContactMessageRead(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestDeleteContactMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "missing", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/contact/9", r.URL.Path)
				if tt.status == http.StatusNoContent {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(t, w, tt.status, models.ErrorResponse{Error: "failed"})
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).DeleteContactMessage(context.Background(), 9)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_PlainBodyAndUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("plain failure"))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "plain failure")

	_, err = a.ListContactMessages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502: Bad Gateway")
}
