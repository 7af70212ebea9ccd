package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/invest-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testClaims() models.Claims {
	return models.NewClaims(models.User{ID: 5, Username: "alice", DisplayName: "Alice", IsAdmin: true})
}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testClaims(), "test-issuer", 24*time.Hour, "secret-key", testNow)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected compact JWS, got %q", token)
	}

	claims, err := ValidateAndParseJWTToken(token, "secret-key", "test-issuer", testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	if claims.UserID != 5 || claims.Username != "alice" || claims.DisplayName != "Alice" || !claims.IsAdmin {
		t.Errorf("unexpected identity claims: %+v", claims)
	}
	if !claims.IssuedAt.Time.Equal(testNow) {
		t.Errorf("expected iat %v, got %v", testNow, claims.IssuedAt.Time)
	}
	if !claims.ExpiresAt.Time.Equal(testNow.Add(24 * time.Hour)) {
		t.Errorf("expected exp %v, got %v", testNow.Add(24*time.Hour), claims.ExpiresAt.Time)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Hour, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(testClaims(), tt.issuer, tt.duration, tt.key, testNow); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken(testClaims(), "iss", 24*time.Hour, "key", testNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims())
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	noExpClaims := testClaims()
	noExpClaims.Issuer = "iss"
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExpClaims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign no exp: %v", err)
	}

	noIdentity, err := GenerateJWTToken(models.Claims{}, "iss", time.Hour, "key", testNow)
	if err != nil {
		t.Fatalf("generate empty: %v", err)
	}

	validParts := strings.Split(valid, ".")
	foreignParts := strings.Split(noIdentity, ".")
	tampered := validParts[0] + "." + foreignParts[1] + "." + validParts[2]

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		now    time.Time
	}{
		{"wrong key", valid, "other-key", "iss", testNow},
		{"wrong issuer", valid, "key", "fake-issuer", testNow},
		{"expired", valid, "key", "iss", testNow.Add(24*time.Hour + time.Second)},
		{"issued in the future", valid, "key", "iss", testNow.Add(-time.Hour)},
		{"malformed", "not.a.token", "key", "iss", testNow},
		{"empty", "", "key", "iss", testNow},
		{"tampered payload", tampered, "key", "iss", testNow},
		{"alg none", noneToken, "key", "iss", testNow},
		{"missing exp", noExp, "key", "iss", testNow},
		{"missing identity", noIdentity, "key", "iss", testNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, tt.now)
			if err == nil {
				t.Fatalf("expected error, got claims %+v", claims)
			}
			if claims != nil {
				t.Errorf("expected nil claims on error")
			}
		})
	}
}

func TestValidateAndParseJWTToken_IgnoresUnknownFields(t *testing.T) {
	mc := jwt.MapClaims{
		"id":          float64(9),
		"username":    "bob",
		"displayName": "Bob",
		"isAdmin":     false,
		"favourite":   "colour",
		"iss":         "iss",
		"iat":         testNow.Unix(),
		"exp":         testNow.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ValidateAndParseJWTToken(token, "key", "iss", testNow)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != 9 || claims.Username != "bob" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: true},
		{name: "extra segment", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err != ErrInvalidAuthorizationHeader {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
