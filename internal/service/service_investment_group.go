package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title: lowercase, runs of anything other
// than a-z and 0-9 become a single dash, leading and trailing dashes dropped.
func Slugify(title string) string {
	return strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

type investmentGroupService struct {
	repository store.InvestmentGroupRepository
	validator  validators.Validator
	sanitizer  validators.Sanitizer
	logger     *logger.Logger
}

func NewInvestmentGroupService(repository store.InvestmentGroupRepository, validator validators.Validator, sanitizer validators.Sanitizer, logger *logger.Logger) InvestmentGroupService {
	return &investmentGroupService{
		repository: repository,
		validator:  validator,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (s *investmentGroupService) List(ctx context.Context) ([]models.InvestmentGroup, error) {
	return s.repository.List(ctx)
}

// Get resolves a numeric key as an id first and falls back to a slug lookup,
// so purely numeric slugs stay reachable.
func (s *investmentGroupService) Get(ctx context.Context, idOrSlug string) (models.InvestmentGroup, error) {
	key := strings.TrimSpace(idOrSlug)

	if id, err := strconv.ParseInt(key, 10, 64); err == nil && id > 0 {
		group, err := s.repository.GetByID(ctx, id)
		if !errors.Is(err, store.ErrInvestmentGroupNotFound) {
			return group, err
		}
	}

	return s.repository.GetBySlug(ctx, key)
}

// Create stores a group. Without a slug one is generated from the title.
func (s *investmentGroupService) Create(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error) {
	group = s.clean(group)
	if group.Slug == "" {
		group.Slug = Slugify(group.Title)
	}

	if err := s.validate(ctx, group); err != nil {
		return models.InvestmentGroup{}, err
	}

	return s.repository.Create(ctx, group)
}

// Update rewrites a group. Without a slug the current one is kept.
func (s *investmentGroupService) Update(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error) {
	group = s.clean(group)
	if group.Slug == "" {
		existing, err := s.repository.GetByID(ctx, group.ID)
		if err != nil {
			return models.InvestmentGroup{}, err
		}
		group.Slug = existing.Slug
	}

	if err := s.validate(ctx, group); err != nil {
		return models.InvestmentGroup{}, err
	}

	return s.repository.Update(ctx, group)
}

// Delete removes a group that no investment references.
func (s *investmentGroupService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

func (s *investmentGroupService) validate(ctx context.Context, group models.InvestmentGroup) error {
	if err := s.validator.Validate(ctx, group); err != nil {
		return err
	}

	// a title of only punctuation yields no slug
	if group.Slug == "" {
		return validators.ErrInvalidSlug
	}

	return nil
}

func (s *investmentGroupService) clean(group models.InvestmentGroup) models.InvestmentGroup {
	group.Title = s.sanitizer.PlainText(group.Title)
	group.Description = optionalText(s.sanitizer.PlainText, group.Description)
	group.Slug = strings.TrimSpace(group.Slug)
	return group
}
