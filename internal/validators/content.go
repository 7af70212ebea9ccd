package validators

import (
	"context"
	"net/mail"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/invest-portal/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldGuestName requires a guest name on a comment. Passed only for
	// anonymous callers.
	FieldGuestName = "guest_name"

	// FieldGroupSlug requires an investment's group slug. Passed on create;
	// an update may omit the slug to keep the current group.
	FieldGroupSlug = "group_slug"
)

const maxUsernameLength = 64

// bcrypt refuses longer inputs.
const maxPasswordBytes = 72

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ContentValidator validates the portal's request models.
type ContentValidator struct{}

func NewContentValidator() Validator {
	return &ContentValidator{}
}

func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value)
	case *models.Registration:
		return v.validateRegistration(*value)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	case models.TeamMember:
		return v.validateTeamMember(value)
	case *models.TeamMember:
		return v.validateTeamMember(*value)

	case models.NewsArticle:
		return v.validateNewsArticle(value)
	case *models.NewsArticle:
		return v.validateNewsArticle(*value)

	case models.AboutSection:
		return v.validateAboutSection(value)
	case *models.AboutSection:
		return v.validateAboutSection(*value)

	case models.ContactMessage:
		return v.validateContactMessage(value)
	case *models.ContactMessage:
		return v.validateContactMessage(*value)

	case models.ContactStatusUpdate:
		return v.validateContactStatusUpdate(value)
	case *models.ContactStatusUpdate:
		return v.validateContactStatusUpdate(*value)

	case models.Comment:
		return v.validateComment(value, fields...)
	case *models.Comment:
		return v.validateComment(*value, fields...)

	case models.CommentUpdate:
		return v.validateCommentUpdate(value)
	case *models.CommentUpdate:
		return v.validateCommentUpdate(*value)

	case models.InvestmentGroup:
		return v.validateInvestmentGroup(value)
	case *models.InvestmentGroup:
		return v.validateInvestmentGroup(*value)

	case models.Investment:
		return v.validateInvestment(value, fields...)
	case *models.Investment:
		return v.validateInvestment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func blankPtr(s *string) bool {
	return s == nil || blank(*s)
}

func (v *ContentValidator) validateRegistration(r models.Registration) error {
	if err := v.validateCredentials(models.Credentials{Username: r.Username, Password: r.Password}); err != nil {
		return err
	}
	if len([]rune(r.Username)) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if len(r.Password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// validateCredentials only checks presence. Length limits apply at
// registration; at login an account that cannot exist fails as invalid
// credentials.
func (v *ContentValidator) validateCredentials(c models.Credentials) error {
	if blank(c.Username) || c.Password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

func (v *ContentValidator) validateTeamMember(m models.TeamMember) error {
	if blank(m.Name) || blank(m.Position) {
		return ErrNameAndPositionRequired
	}
	return nil
}

func (v *ContentValidator) validateNewsArticle(a models.NewsArticle) error {
	if blank(a.Title) || blank(a.Content) {
		return ErrTitleAndContentRequired
	}
	return nil
}

func (v *ContentValidator) validateAboutSection(s models.AboutSection) error {
	if blank(s.Title) || blank(s.Content) {
		return ErrTitleAndContentRequired
	}
	if s.OrderIndex != nil && *s.OrderIndex < 0 {
		return ErrInvalidOrderIndex
	}
	return nil
}

func (v *ContentValidator) validateContactMessage(m models.ContactMessage) error {
	if blank(m.Name) || blank(m.Email) || blank(m.Message) {
		return ErrContactFieldsRequired
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func (v *ContentValidator) validateContactStatusUpdate(u models.ContactStatusUpdate) error {
	if u.IsRead == nil {
		return ErrIsReadRequired
	}
	return nil
}

func (v *ContentValidator) validateComment(c models.Comment, fields ...string) error {
	if blank(c.Content) || blank(c.PageID) {
		return ErrCommentFieldsRequired
	}
	if c.ParentID != nil && *c.ParentID <= 0 {
		return ErrInvalidParentID
	}
	if slices.Contains(fields, FieldGuestName) && blankPtr(c.GuestName) {
		return ErrGuestNameRequired
	}
	return nil
}

func (v *ContentValidator) validateCommentUpdate(u models.CommentUpdate) error {
	if blank(u.Content) {
		return ErrContentRequired
	}
	return nil
}

func (v *ContentValidator) validateInvestmentGroup(g models.InvestmentGroup) error {
	if blank(g.Title) {
		return ErrTitleRequired
	}
	if g.Slug != "" && !slugPattern.MatchString(g.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

func (v *ContentValidator) validateInvestment(i models.Investment, fields ...string) error {
	if slices.Contains(fields, FieldGroupSlug) {
		if blank(i.Title) || blank(i.GroupSlug) {
			return ErrTitleAndGroupRequired
		}
		return nil
	}

	if blank(i.Title) {
		return ErrTitleRequired
	}
	return nil
}
