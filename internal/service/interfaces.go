package service

import (
	"context"

	"github.com/MKhiriev/invest-portal/models"
)

// AuthService registers and authenticates users, issues bearer tokens and
// resolves the identity behind an Authorization header.
type AuthService interface {
	Register(ctx context.Context, registration models.Registration) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	IssueToken(ctx context.Context, user models.User) (string, error)

	// ResolveIdentity never fails: problems are reported through the
	// returned identity's Err.
	ResolveIdentity(ctx context.Context, authorizationHeader string) models.Identity
}

type TeamService interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Get(ctx context.Context, id int64) (models.TeamMember, error)
	Create(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	Update(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

type NewsService interface {
	List(ctx context.Context) ([]models.NewsArticle, error)
	Get(ctx context.Context, id int64) (models.NewsArticle, error)
	Create(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error)
	Update(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error)
	Delete(ctx context.Context, id int64) error
}

type AboutService interface {
	List(ctx context.Context) ([]models.AboutSection, error)
	Get(ctx context.Context, id int64) (models.AboutSection, error)
	Create(ctx context.Context, section models.AboutSection) (models.AboutSection, error)
	Update(ctx context.Context, section models.AboutSection) (models.AboutSection, error)
	Delete(ctx context.Context, id int64) error
}

type ContactService interface {
	Submit(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	Get(ctx context.Context, id int64) (models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, update models.ContactStatusUpdate) (models.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

// CommentService applies ownership rules: anyone may post (guests with a
// name), only the author or an admin may edit or delete.
type CommentService interface {
	List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
	Get(ctx context.Context, id int64) (models.Comment, error)
	Create(ctx context.Context, identity models.Identity, comment models.Comment) (models.Comment, error)
	Update(ctx context.Context, identity models.Identity, id int64, update models.CommentUpdate) (models.Comment, error)
	Delete(ctx context.Context, identity models.Identity, id int64) error
}

type InvestmentGroupService interface {
	List(ctx context.Context) ([]models.InvestmentGroup, error)
	// Get looks a group up by numeric id or, failing that, by slug.
	Get(ctx context.Context, idOrSlug string) (models.InvestmentGroup, error)
	Create(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error)
	Update(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error)
	Delete(ctx context.Context, id int64) error
}

type InvestmentService interface {
	List(ctx context.Context, filter models.InvestmentFilter) ([]models.Investment, error)
	Get(ctx context.Context, id int64) (models.Investment, error)
	Create(ctx context.Context, investment models.Investment) (models.Investment, error)
	Update(ctx context.Context, investment models.Investment) (models.Investment, error)
	Delete(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
