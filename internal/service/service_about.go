package service

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

type aboutService struct {
	repository store.AboutRepository
	validator  validators.Validator
	sanitizer  validators.Sanitizer
	logger     *logger.Logger
}

func NewAboutService(repository store.AboutRepository, validator validators.Validator, sanitizer validators.Sanitizer, logger *logger.Logger) AboutService {
	return &aboutService{
		repository: repository,
		validator:  validator,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (s *aboutService) List(ctx context.Context) ([]models.AboutSection, error) {
	return s.repository.List(ctx)
}

func (s *aboutService) Get(ctx context.Context, id int64) (models.AboutSection, error) {
	return s.repository.Get(ctx, id)
}

// Create appends the section unless an order index is given.
func (s *aboutService) Create(ctx context.Context, section models.AboutSection) (models.AboutSection, error) {
	section = s.clean(section)
	if err := s.validator.Validate(ctx, section); err != nil {
		return models.AboutSection{}, err
	}

	return s.repository.Create(ctx, section)
}

func (s *aboutService) Update(ctx context.Context, section models.AboutSection) (models.AboutSection, error) {
	section = s.clean(section)
	if err := s.validator.Validate(ctx, section); err != nil {
		return models.AboutSection{}, err
	}

	return s.repository.Update(ctx, section)
}

// Delete removes the section; the remaining sections are renumbered.
func (s *aboutService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

func (s *aboutService) clean(section models.AboutSection) models.AboutSection {
	section.Title = s.sanitizer.PlainText(section.Title)
	section.Content = s.sanitizer.RichText(section.Content)
	section.ImageURL = optionalText(trimSpace, section.ImageURL)
	return section
}
