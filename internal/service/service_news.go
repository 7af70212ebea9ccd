package service

import (
	"context"
	"time"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

type newsService struct {
	repository store.NewsRepository
	validator  validators.Validator
	sanitizer  validators.Sanitizer
	now        func() time.Time
	logger     *logger.Logger
}

func NewNewsService(repository store.NewsRepository, validator validators.Validator, sanitizer validators.Sanitizer, logger *logger.Logger) NewsService {
	return &newsService{
		repository: repository,
		validator:  validator,
		sanitizer:  sanitizer,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *newsService) List(ctx context.Context) ([]models.NewsArticle, error) {
	return s.repository.List(ctx)
}

func (s *newsService) Get(ctx context.Context, id int64) (models.NewsArticle, error) {
	return s.repository.Get(ctx, id)
}

// Create stores the article. A missing published date defaults to now.
func (s *newsService) Create(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error) {
	article = s.clean(article)
	if err := s.validator.Validate(ctx, article); err != nil {
		return models.NewsArticle{}, err
	}

	if article.PublishedDate == nil {
		now := s.now().UTC()
		article.PublishedDate = &now
	}

	return s.repository.Create(ctx, article)
}

// Update rewrites the article. A missing published date keeps the stored one.
func (s *newsService) Update(ctx context.Context, article models.NewsArticle) (models.NewsArticle, error) {
	article = s.clean(article)
	if err := s.validator.Validate(ctx, article); err != nil {
		return models.NewsArticle{}, err
	}

	return s.repository.Update(ctx, article)
}

func (s *newsService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

// clean strips markup from every field except content, which keeps a safe
// HTML subset.
func (s *newsService) clean(article models.NewsArticle) models.NewsArticle {
	article.Title = s.sanitizer.PlainText(article.Title)
	article.Content = s.sanitizer.RichText(article.Content)
	article.Author = optionalText(s.sanitizer.PlainText, article.Author)
	article.Source = optionalText(s.sanitizer.PlainText, article.Source)
	article.ImageURL = optionalText(trimSpace, article.ImageURL)
	return article
}
