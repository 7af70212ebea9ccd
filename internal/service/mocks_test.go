package service

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn     func(ctx context.Context, user models.User) (models.User, error)
	findByNameFn func(ctx context.Context, username string) (models.User, error)
	findByIDFn   func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrUserNotFound
}

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	comments map[int64]models.Comment

	created []models.Comment
	updated []int64
	deleted []int64
}

func newMockCommentRepository(comments ...models.Comment) *mockCommentRepository {
	m := &mockCommentRepository{comments: make(map[int64]models.Comment)}
	for _, c := range comments {
		m.comments[c.ID] = c
	}
	return m
}

func (m *mockCommentRepository) List(_ context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if filter.PageID == "" || c.PageID == filter.PageID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCommentRepository) Get(_ context.Context, id int64) (models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return models.Comment{}, store.ErrCommentNotFound
	}
	return c, nil
}

func (m *mockCommentRepository) Create(_ context.Context, comment models.Comment) (models.Comment, error) {
	comment.ID = int64(len(m.comments) + 100)
	m.comments[comment.ID] = comment
	m.created = append(m.created, comment)
	return comment, nil
}

func (m *mockCommentRepository) UpdateContent(_ context.Context, id int64, content string) (models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return models.Comment{}, store.ErrCommentNotFound
	}
	c.Content = content
	m.comments[id] = c
	m.updated = append(m.updated, id)
	return c, nil
}

func (m *mockCommentRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.comments[id]; !ok {
		return store.ErrCommentNotFound
	}
	delete(m.comments, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.InvestmentGroupRepository
// ─────────────────────────────────────────────

type mockGroupRepository struct {
	groups []models.InvestmentGroup

	createFn func(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error)
	updateFn func(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error)
}

func (m *mockGroupRepository) List(context.Context) ([]models.InvestmentGroup, error) {
	return m.groups, nil
}

func (m *mockGroupRepository) GetByID(_ context.Context, id int64) (models.InvestmentGroup, error) {
	for _, g := range m.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return models.InvestmentGroup{}, store.ErrInvestmentGroupNotFound
}

func (m *mockGroupRepository) GetBySlug(_ context.Context, slug string) (models.InvestmentGroup, error) {
	for _, g := range m.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return models.InvestmentGroup{}, store.ErrInvestmentGroupNotFound
}

func (m *mockGroupRepository) Create(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error) {
	if m.createFn != nil {
		return m.createFn(ctx, group)
	}
	return group, nil
}

func (m *mockGroupRepository) Update(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, group)
	}
	return group, nil
}

func (m *mockGroupRepository) Delete(context.Context, int64) error {
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.InvestmentRepository
// ─────────────────────────────────────────────

type mockInvestmentRepository struct {
	investments map[int64]models.Investment

	createFn func(ctx context.Context, investment models.Investment) (models.Investment, error)
	updateFn func(ctx context.Context, investment models.Investment) (models.Investment, error)
}

func (m *mockInvestmentRepository) List(context.Context, models.InvestmentFilter) ([]models.Investment, error) {
	return nil, nil
}

func (m *mockInvestmentRepository) Get(_ context.Context, id int64) (models.Investment, error) {
	i, ok := m.investments[id]
	if !ok {
		return models.Investment{}, store.ErrInvestmentNotFound
	}
	return i, nil
}

func (m *mockInvestmentRepository) Create(ctx context.Context, investment models.Investment) (models.Investment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, investment)
	}
	return investment, nil
}

func (m *mockInvestmentRepository) Update(ctx context.Context, investment models.Investment) (models.Investment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, investment)
	}
	return investment, nil
}

func (m *mockInvestmentRepository) Delete(context.Context, int64) error {
	return nil
}

// ─────────────────────────────────────────────
// Mock: content repositories
// ─────────────────────────────────────────────

type mockNewsRepository struct {
	store.NewsRepository
	created models.NewsArticle
}

func (m *mockNewsRepository) Create(_ context.Context, article models.NewsArticle) (models.NewsArticle, error) {
	m.created = article
	return article, nil
}

type mockContactRepository struct {
	store.ContactRepository
	created  models.ContactMessage
	statusFn func(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error)
}

func (m *mockContactRepository) Create(_ context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	message.ID = 42
	m.created = message
	return message, nil
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error) {
	return m.statusFn(ctx, id, isRead)
}

type mockTeamRepository struct {
	store.TeamRepository
	created models.TeamMember
}

func (m *mockTeamRepository) Create(_ context.Context, member models.TeamMember) (models.TeamMember, error) {
	m.created = member
	return member, nil
}

type mockAboutRepository struct {
	store.AboutRepository
	created models.AboutSection
}

func (m *mockAboutRepository) Create(_ context.Context, section models.AboutSection) (models.AboutSection, error) {
	m.created = section
	return section, nil
}
