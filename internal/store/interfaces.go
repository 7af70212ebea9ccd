package store

import (
	"context"

	"github.com/MKhiriev/invest-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists portal accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

type TeamRepository interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Get(ctx context.Context, id int64) (models.TeamMember, error)
	Create(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	Update(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

type NewsRepository interface {
	List(ctx context.Context) ([]models.NewsArticle, error)
	Get(ctx context.Context, id int64) (models.NewsArticle, error)
	Create(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error)
	Update(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error)
	Delete(ctx context.Context, id int64) error
}

// AboutRepository keeps about sections densely ordered: Create appends when
// no order index is given and Delete renumbers the remaining sections.
type AboutRepository interface {
	List(ctx context.Context) ([]models.AboutSection, error)
	Get(ctx context.Context, id int64) (models.AboutSection, error)
	Create(ctx context.Context, section models.AboutSection) (models.AboutSection, error)
	Update(ctx context.Context, section models.AboutSection) (models.AboutSection, error)
	Delete(ctx context.Context, id int64) error
}

type ContactRepository interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Get(ctx context.Context, id int64) (models.ContactMessage, error)
	Create(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

// CommentRepository stores page comments. Delete also removes direct replies.
type CommentRepository interface {
	List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
	Get(ctx context.Context, id int64) (models.Comment, error)
	Create(ctx context.Context, comment models.Comment) (models.Comment, error)
	UpdateContent(ctx context.Context, id int64, content string) (models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type InvestmentGroupRepository interface {
	List(ctx context.Context) ([]models.InvestmentGroup, error)
	GetByID(ctx context.Context, id int64) (models.InvestmentGroup, error)
	GetBySlug(ctx context.Context, slug string) (models.InvestmentGroup, error)
	Create(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error)
	Update(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error)
	Delete(ctx context.Context, id int64) error
}

type InvestmentRepository interface {
	List(ctx context.Context, filter models.InvestmentFilter) ([]models.Investment, error)
	Get(ctx context.Context, id int64) (models.Investment, error)
	Create(ctx context.Context, investment models.Investment) (models.Investment, error)
	Update(ctx context.Context, investment models.Investment) (models.Investment, error)
	Delete(ctx context.Context, id int64) error
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
