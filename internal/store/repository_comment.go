package store

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.Content, &c.PageID, &c.ParentID, &c.UserID, &c.GuestName, &c.CreatedAt, &c.UpdatedAt, &c.UserDisplayName)
	return c, err
}

func scanID(row rowScanner) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}

// List returns comments newest first, optionally restricted to one page.
func (r *commentRepository) List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	query, args, err := buildSelectCommentsQuery(r.db.builder, filter)
	if err != nil {
		return nil, buildError(ctx, "commentRepository.List", err)
	}

	return selectAll(ctx, r.db, "commentRepository.List", query, args, scanComment)
}

func (r *commentRepository) Get(ctx context.Context, id int64) (models.Comment, error) {
	query, args, err := buildSelectCommentQuery(r.db.builder, id)
	if err != nil {
		return models.Comment{}, buildError(ctx, "commentRepository.Get", err)
	}

	return selectOne(ctx, r.db, r.db, "commentRepository.Get", query, args, scanComment, ErrCommentNotFound, nil)
}

// Create inserts the comment and reads it back with the author's display
// name. A reply to a missing parent yields [ErrParentCommentNotFound].
func (r *commentRepository) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	query, args, err := buildInsertCommentQuery(r.db.builder, comment)
	if err != nil {
		return models.Comment{}, buildError(ctx, "commentRepository.Create", err)
	}

	id, err := selectOne(ctx, r.db, r.db, "commentRepository.Create", query, args, scanID,
		ErrCommentNotFound, constraintErrors{ForeignKeyViolation: ErrParentCommentNotFound})
	if err != nil {
		return models.Comment{}, err
	}

	return r.Get(ctx, id)
}

func (r *commentRepository) UpdateContent(ctx context.Context, id int64, content string) (models.Comment, error) {
	query, args, err := buildUpdateCommentQuery(r.db.builder, id, content)
	if err != nil {
		return models.Comment{}, buildError(ctx, "commentRepository.UpdateContent", err)
	}

	if _, err = selectOne(ctx, r.db, r.db, "commentRepository.UpdateContent", query, args, scanID, ErrCommentNotFound, nil); err != nil {
		return models.Comment{}, err
	}

	return r.Get(ctx, id)
}

// Delete removes the comment together with its direct replies.
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteCommentQuery(r.db.builder, id)
	if err != nil {
		return buildError(ctx, "commentRepository.Delete", err)
	}

	return execAffecting(ctx, r.db, r.db, "commentRepository.Delete", query, args, ErrCommentNotFound, nil)
}
