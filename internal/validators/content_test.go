// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/invest-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func i64Ptr(i int64) *int64   { return &i }
func boolPtr(b bool) *bool    { return &b }

func validate(t *testing.T, obj any, fields ...string) error {
	t.Helper()
	return NewContentValidator().Validate(context.Background(), obj, fields...)
}

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

func TestContentValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		// auth
		{name: "registration ok", obj: models.Registration{Username: "alice", Password: "pw123"}},
		{name: "registration pointer ok", obj: &models.Registration{Username: "alice", Password: "pw123"}},
		{name: "registration no password", obj: models.Registration{Username: "alice"}, wantErr: ErrCredentialsRequired},
		{name: "registration blank username", obj: models.Registration{Username: "  ", Password: "x"}, wantErr: ErrCredentialsRequired},
		{name: "registration long username", obj: models.Registration{Username: strings.Repeat("a", 65), Password: "x"}, wantErr: ErrUsernameTooLong},
		{name: "registration long password", obj: models.Registration{Username: "a", Password: strings.Repeat("p", 73)}, wantErr: ErrPasswordTooLong},
		{name: "credentials missing", obj: models.Credentials{}, wantErr: ErrCredentialsRequired},
		{name: "credentials ok", obj: &models.Credentials{Username: "a", Password: "b"}},
		{name: "credentials long values ok", obj: models.Credentials{Username: strings.Repeat("a", 65), Password: strings.Repeat("p", 73)}},

		// team, news, about
		{name: "team ok", obj: models.TeamMember{Name: "Ann", Position: "CEO"}},
		{name: "team no position", obj: models.TeamMember{Name: "Ann"}, wantErr: ErrNameAndPositionRequired},
		{name: "news ok", obj: models.NewsArticle{Title: "t", Content: "c"}},
		{name: "news no content", obj: &models.NewsArticle{Title: "t"}, wantErr: ErrTitleAndContentRequired},
		{name: "about ok without index", obj: models.AboutSection{Title: "t", Content: "c"}},
		{name: "about ok with index", obj: models.AboutSection{Title: "t", Content: "c", OrderIndex: intPtr(0)}},
		{name: "about negative index", obj: models.AboutSection{Title: "t", Content: "c", OrderIndex: intPtr(-1)}, wantErr: ErrInvalidOrderIndex},
		{name: "about no title", obj: models.AboutSection{Content: "c"}, wantErr: ErrTitleAndContentRequired},

		// contact
		{name: "contact ok", obj: models.ContactMessage{Name: "n", Email: "n@example.com", Message: "hi"}},
		{name: "contact missing email", obj: models.ContactMessage{Name: "n", Message: "hi"}, wantErr: ErrContactFieldsRequired},
		{name: "contact bad email", obj: models.ContactMessage{Name: "n", Email: "nope", Message: "hi"}, wantErr: ErrInvalidEmail},
		{name: "contact status ok", obj: models.ContactStatusUpdate{IsRead: boolPtr(false)}},
		{name: "contact status missing", obj: models.ContactStatusUpdate{}, wantErr: ErrIsReadRequired},

		// comments
		{name: "comment ok", obj: models.Comment{Content: "c", PageID: "home"}},
		{name: "comment no page", obj: models.Comment{Content: "c"}, wantErr: ErrCommentFieldsRequired},
		{name: "comment bad parent", obj: models.Comment{Content: "c", PageID: "p", ParentID: i64Ptr(0)}, wantErr: ErrInvalidParentID},
		{name: "guest comment without name", obj: models.Comment{Content: "c", PageID: "p"}, fields: []string{FieldGuestName}, wantErr: ErrGuestNameRequired},
		{name: "guest comment blank name", obj: models.Comment{Content: "c", PageID: "p", GuestName: strPtr(" ")}, fields: []string{FieldGuestName}, wantErr: ErrGuestNameRequired},
		{name: "guest comment ok", obj: models.Comment{Content: "c", PageID: "p", GuestName: strPtr("Eve")}, fields: []string{FieldGuestName}},
		{name: "comment update ok", obj: models.CommentUpdate{Content: "c"}},
		{name: "comment update empty", obj: models.CommentUpdate{}, wantErr: ErrContentRequired},

		// investments
		{name: "group ok", obj: models.InvestmentGroup{Title: "Real Estate"}},
		{name: "group ok with slug", obj: models.InvestmentGroup{Title: "Real Estate", Slug: "real-estate"}},
		{name: "group bad slug", obj: models.InvestmentGroup{Title: "Real Estate", Slug: "Real Estate"}, wantErr: ErrInvalidSlug},
		{name: "group no title", obj: models.InvestmentGroup{}, wantErr: ErrTitleRequired},
		{name: "investment create ok", obj: models.Investment{Title: "t", GroupSlug: "g"}, fields: []string{FieldGroupSlug}},
		{name: "investment create no group", obj: models.Investment{Title: "t"}, fields: []string{FieldGroupSlug}, wantErr: ErrTitleAndGroupRequired},
		{name: "investment update keeps group", obj: models.Investment{Title: "t"}},
		{name: "investment update no title", obj: models.Investment{}, wantErr: ErrTitleRequired},

		{name: "unsupported", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(t, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAsValidationError(t *testing.T) {
	ve, ok := AsValidationError(ErrTitleRequired)
	assert.True(t, ok)
	assert.Same(t, ErrTitleRequired, ve)

	_, ok = AsValidationError(ErrUnsupportedType)
	assert.False(t, ok)
	_, ok = AsValidationError(nil)
	assert.False(t, ok)

	wrapped := fmt.Errorf("create team member: %w", validate(t, models.TeamMember{}))
	ve, ok = AsValidationError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "name and position are required", ve.Error())
}
