package store

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type newsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNewsRepository(db *DB, logger *logger.Logger) NewsRepository {
	return &newsRepository{
		db:     db,
		logger: logger,
	}
}

func scanNewsArticle(row rowScanner) (models.NewsArticle, error) {
	var a models.NewsArticle
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.ImageURL, &a.PublishedDate, &a.Author, &a.Source, &a.IsFeatured, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// List returns all articles by published date, most recent first.
func (r *newsRepository) List(ctx context.Context) ([]models.NewsArticle, error) {
	query, args, err := buildSelectNewsQuery(r.db.builder)
	if err != nil {
		return nil, buildError(ctx, "newsRepository.List", err)
	}

	return selectAll(ctx, r.db, "newsRepository.List", query, args, scanNewsArticle)
}

func (r *newsRepository) Get(ctx context.Context, id int64) (models.NewsArticle, error) {
	query, args, err := buildSelectNewsArticleQuery(r.db.builder, id)
	if err != nil {
		return models.NewsArticle{}, buildError(ctx, "newsRepository.Get", err)
	}

	return selectOne(ctx, r.db, r.db, "newsRepository.Get", query, args, scanNewsArticle, ErrNewsArticleNotFound, nil)
}

func (r *newsRepository) Create(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error) {
	query, args, err := buildInsertNewsArticleQuery(r.db.builder, article)
	if err != nil {
		return models.NewsArticle{}, buildError(ctx, "newsRepository.Create", err)
	}

	return selectOne(ctx, r.db, r.db, "newsRepository.Create", query, args, scanNewsArticle, ErrNewsArticleNotFound, nil)
}

// Update rewrites the article and bumps updated_at.
func (r *newsRepository) Update(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error) {
	query, args, err := buildUpdateNewsArticleQuery(r.db.builder, article)
	if err != nil {
		return models.NewsArticle{}, buildError(ctx, "newsRepository.Update", err)
	}

	return selectOne(ctx, r.db, r.db, "newsRepository.Update", query, args, scanNewsArticle, ErrNewsArticleNotFound, nil)
}

func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteByIDQuery(r.db.builder, tableNews, id)
	if err != nil {
		return buildError(ctx, "newsRepository.Delete", err)
	}

	return execAffecting(ctx, r.db, r.db, "newsRepository.Delete", query, args, ErrNewsArticleNotFound, nil)
}
