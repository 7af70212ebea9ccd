// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/invest-portal/models"
)

const (
	tableUsers            = "users"
	tableTeamMembers      = "team_members"
	tableNews             = "news"
	tableAboutSections    = "about_sections"
	tableContactMessages  = "contact_messages"
	tableComments         = "comments"
	tableInvestmentGroups = "investment_groups"
	tableInvestments      = "investments"
)

var (
	userColumns = []string{"id", "username", "password_hash", "display_name", "is_admin", "created_at"}

	teamMemberColumns = []string{"id", "name", "position", "bio", "image_url", "created_at"}

	newsColumns = []string{"id", "title", "content", "image_url", "published_date", "author", "source", "is_featured", "created_at", "updated_at"}

	aboutSectionColumns = []string{"id", "title", "content", "order_index", "image_url", "created_at"}

	contactMessageColumns = []string{"id", "name", "email", "subject", "message", "date", "is_read", "created_at"}

	commentColumns = []string{
		"c.id", "c.content", "c.page_id", "c.parent_id", "c.user_id", "c.guest_name", "c.created_at", "c.updated_at",
		"(SELECT u.display_name FROM users u WHERE u.id = c.user_id) AS user_display_name",
	}

	investmentGroupColumns = []string{"id", "title", "description", "slug", "created_at"}

	investmentColumns = []string{
		"i.id", "i.title", "i.description", "i.roi", "i.image_url", "i.group_slug", "i.created_at",
		"(SELECT g.title FROM investment_groups g WHERE g.slug = i.group_slug) AS group_title",
	}
)

const (
	// lockAboutSections blocks concurrent appends and renumbering until the
	// transaction ends. SQLite runs on a single connection and needs no lock.
	lockAboutSections = `LOCK TABLE about_sections IN SHARE ROW EXCLUSIVE MODE`

	// selectNextAboutOrderIndex yields max+1, or 0 for an empty table.
	selectNextAboutOrderIndex = `SELECT COALESCE(MAX(order_index) + 1, 0) FROM about_sections`

	// reindexAboutSections renumbers sections 0..n-1 keeping their relative
	// order. Valid for both PostgreSQL and SQLite.
	reindexAboutSections = `WITH ordered AS (
		SELECT id, ROW_NUMBER() OVER (ORDER BY order_index, id) - 1 AS new_index
		FROM about_sections
	)
	UPDATE about_sections
	SET order_index = (SELECT new_index FROM ordered WHERE ordered.id = about_sections.id)`
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildDeleteByIDQuery(b sq.StatementBuilderType, table string, id int64) (string, []any, error) {
	return b.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(tableUsers).
		Columns("username", "password_hash", "display_name", "is_admin").
		Values(user.Username, user.PasswordHash, user.DisplayName, user.IsAdmin).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ---------------------------------------------------------------------------
// team
// ---------------------------------------------------------------------------

func buildSelectTeamMembersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(teamMemberColumns...).
		From(tableTeamMembers).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectTeamMemberQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(teamMemberColumns...).
		From(tableTeamMembers).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertTeamMemberQuery(b sq.StatementBuilderType, m models.TeamMember) (string, []any, error) {
	return b.Insert(tableTeamMembers).
		Columns("name", "position", "bio", "image_url").
		Values(m.Name, m.Position, m.Bio, m.ImageURL).
		Suffix(returning(teamMemberColumns)).
		ToSql()
}

func buildUpdateTeamMemberQuery(b sq.StatementBuilderType, m models.TeamMember) (string, []any, error) {
	return b.Update(tableTeamMembers).
		Set("name", m.Name).
		Set("position", m.Position).
		Set("bio", m.Bio).
		Set("image_url", m.ImageURL).
		Where(sq.Eq{"id": m.ID}).
		Suffix(returning(teamMemberColumns)).
		ToSql()
}

// ---------------------------------------------------------------------------
// news
// ---------------------------------------------------------------------------

func buildSelectNewsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(newsColumns...).
		From(tableNews).
		OrderBy("published_date DESC", "id DESC").
		ToSql()
}

func buildSelectNewsArticleQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(newsColumns...).
		From(tableNews).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertNewsArticleQuery(b sq.StatementBuilderType, a models.NewsArticle) (string, []any, error) {
	return b.Insert(tableNews).
		Columns("title", "content", "image_url", "published_date", "author", "source", "is_featured").
		Values(a.Title, a.Content, a.ImageURL, a.PublishedDate, a.Author, a.Source, a.IsFeatured).
		Suffix(returning(newsColumns)).
		ToSql()
}

// buildUpdateNewsArticleQuery keeps the stored published_date when the update
// carries none.
func buildUpdateNewsArticleQuery(b sq.StatementBuilderType, a models.NewsArticle) (string, []any, error) {
	q := b.Update(tableNews).
		Set("title", a.Title).
		Set("content", a.Content).
		Set("image_url", a.ImageURL).
		Set("author", a.Author).
		Set("source", a.Source).
		Set("is_featured", a.IsFeatured).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if a.PublishedDate != nil {
		q = q.Set("published_date", *a.PublishedDate)
	}

	return q.Where(sq.Eq{"id": a.ID}).
		Suffix(returning(newsColumns)).
		ToSql()
}

// ---------------------------------------------------------------------------
// about
// ---------------------------------------------------------------------------

func buildSelectAboutSectionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(aboutSectionColumns...).
		From(tableAboutSections).
		OrderBy("order_index ASC", "id ASC").
		ToSql()
}

func buildSelectAboutSectionQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(aboutSectionColumns...).
		From(tableAboutSections).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertAboutSectionQuery(b sq.StatementBuilderType, s models.AboutSection, orderIndex int) (string, []any, error) {
	return b.Insert(tableAboutSections).
		Columns("title", "content", "order_index", "image_url").
		Values(s.Title, s.Content, orderIndex, s.ImageURL).
		Suffix(returning(aboutSectionColumns)).
		ToSql()
}

// buildUpdateAboutSectionQuery keeps the stored order_index when the update
// carries none.
func buildUpdateAboutSectionQuery(b sq.StatementBuilderType, s models.AboutSection) (string, []any, error) {
	q := b.Update(tableAboutSections).
		Set("title", s.Title).
		Set("content", s.Content).
		Set("image_url", s.ImageURL)

	if s.OrderIndex != nil {
		q = q.Set("order_index", *s.OrderIndex)
	}

	return q.Where(sq.Eq{"id": s.ID}).
		Suffix(returning(aboutSectionColumns)).
		ToSql()
}

// ---------------------------------------------------------------------------
// contact
// ---------------------------------------------------------------------------

func buildSelectContactMessagesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(contactMessageColumns...).
		From(tableContactMessages).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectContactMessageQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(contactMessageColumns...).
		From(tableContactMessages).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertContactMessageQuery(b sq.StatementBuilderType, m models.ContactMessage) (string, []any, error) {
	return b.Insert(tableContactMessages).
		Columns("name", "email", "subject", "message", "date", "is_read").
		Values(m.Name, m.Email, m.Subject, m.Message, m.Date, m.IsRead).
		Suffix(returning(contactMessageColumns)).
		ToSql()
}

func buildUpdateContactStatusQuery(b sq.StatementBuilderType, id int64, isRead bool) (string, []any, error) {
	return b.Update(tableContactMessages).
		Set("is_read", isRead).
		Where(sq.Eq{"id": id}).
		Suffix(returning(contactMessageColumns)).
		ToSql()
}

// ---------------------------------------------------------------------------
// comments
// ---------------------------------------------------------------------------

func buildSelectCommentsQuery(b sq.StatementBuilderType, filter models.CommentFilter) (string, []any, error) {
	q := b.Select(commentColumns...).
		From(tableComments + " c")

	if filter.PageID != "" {
		q = q.Where(sq.Eq{"c.page_id": filter.PageID})
	}

	return q.OrderBy("c.created_at DESC", "c.id DESC").ToSql()
}

func buildSelectCommentQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(commentColumns...).
		From(tableComments + " c").
		Where(sq.Eq{"c.id": id}).
		ToSql()
}

func buildInsertCommentQuery(b sq.StatementBuilderType, c models.Comment) (string, []any, error) {
	return b.Insert(tableComments).
		Columns("content", "page_id", "parent_id", "user_id", "guest_name").
		Values(c.Content, c.PageID, c.ParentID, c.UserID, c.GuestName).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateCommentQuery(b sq.StatementBuilderType, id int64, content string) (string, []any, error) {
	return b.Update(tableComments).
		Set("content", content).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
}

// buildDeleteCommentQuery removes the comment and its direct replies.
func buildDeleteCommentQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(tableComments).
		Where(sq.Or{sq.Eq{"id": id}, sq.Eq{"parent_id": id}}).
		ToSql()
}

// ---------------------------------------------------------------------------
// investment groups
// ---------------------------------------------------------------------------

func buildSelectInvestmentGroupsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(investmentGroupColumns...).
		From(tableInvestmentGroups).
		OrderBy("title ASC", "id ASC").
		ToSql()
}

func buildSelectInvestmentGroupByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(investmentGroupColumns...).
		From(tableInvestmentGroups).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectInvestmentGroupBySlugQuery(b sq.StatementBuilderType, slug string) (string, []any, error) {
	return b.Select(investmentGroupColumns...).
		From(tableInvestmentGroups).
		Where(sq.Eq{"slug": slug}).
		ToSql()
}

func buildInsertInvestmentGroupQuery(b sq.StatementBuilderType, g models.InvestmentGroup) (string, []any, error) {
	return b.Insert(tableInvestmentGroups).
		Columns("title", "description", "slug").
		Values(g.Title, g.Description, g.Slug).
		Suffix(returning(investmentGroupColumns)).
		ToSql()
}

func buildUpdateInvestmentGroupQuery(b sq.StatementBuilderType, g models.InvestmentGroup) (string, []any, error) {
	return b.Update(tableInvestmentGroups).
		Set("title", g.Title).
		Set("description", g.Description).
		Set("slug", g.Slug).
		Where(sq.Eq{"id": g.ID}).
		Suffix(returning(investmentGroupColumns)).
		ToSql()
}

// ---------------------------------------------------------------------------
// investments
// ---------------------------------------------------------------------------

func buildSelectInvestmentsQuery(b sq.StatementBuilderType, filter models.InvestmentFilter) (string, []any, error) {
	q := b.Select(investmentColumns...).
		From(tableInvestments + " i")

	if filter.GroupSlug != "" {
		q = q.Where(sq.Eq{"i.group_slug": filter.GroupSlug})
	}

	return q.OrderBy("i.created_at DESC", "i.id DESC").ToSql()
}

func buildSelectInvestmentQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(investmentColumns...).
		From(tableInvestments + " i").
		Where(sq.Eq{"i.id": id}).
		ToSql()
}

func buildInsertInvestmentQuery(b sq.StatementBuilderType, i models.Investment) (string, []any, error) {
	return b.Insert(tableInvestments).
		Columns("title", "description", "roi", "image_url", "group_slug").
		Values(i.Title, i.Description, i.ROI, i.ImageURL, i.GroupSlug).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateInvestmentQuery(b sq.StatementBuilderType, i models.Investment) (string, []any, error) {
	return b.Update(tableInvestments).
		Set("title", i.Title).
		Set("description", i.Description).
		Set("roi", i.ROI).
		Set("image_url", i.ImageURL).
		Set("group_slug", i.GroupSlug).
		Where(sq.Eq{"id": i.ID}).
		Suffix("RETURNING id").
		ToSql()
}
