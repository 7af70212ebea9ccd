package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

type investmentService struct {
	repository store.InvestmentRepository
	groups     store.InvestmentGroupRepository
	validator  validators.Validator
	sanitizer  validators.Sanitizer
	logger     *logger.Logger
}

func NewInvestmentService(repository store.InvestmentRepository, groups store.InvestmentGroupRepository, validator validators.Validator, sanitizer validators.Sanitizer, logger *logger.Logger) InvestmentService {
	return &investmentService{
		repository: repository,
		groups:     groups,
		validator:  validator,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (s *investmentService) List(ctx context.Context, filter models.InvestmentFilter) ([]models.Investment, error) {
	filter.GroupSlug = strings.TrimSpace(filter.GroupSlug)
	return s.repository.List(ctx, filter)
}

func (s *investmentService) Get(ctx context.Context, id int64) (models.Investment, error) {
	return s.repository.Get(ctx, id)
}

// Create stores an investment in an existing group.
func (s *investmentService) Create(ctx context.Context, investment models.Investment) (models.Investment, error) {
	investment = s.clean(investment)
	if err := s.validator.Validate(ctx, investment, validators.FieldGroupSlug); err != nil {
		return models.Investment{}, err
	}

	if _, err := s.groups.GetBySlug(ctx, investment.GroupSlug); err != nil {
		return models.Investment{}, err
	}

	return s.repository.Create(ctx, investment)
}

// Update rewrites an investment. Without a group slug it stays in its current
// group.
func (s *investmentService) Update(ctx context.Context, investment models.Investment) (models.Investment, error) {
	investment = s.clean(investment)
	if err := s.validator.Validate(ctx, investment); err != nil {
		return models.Investment{}, err
	}

	if investment.GroupSlug == "" {
		existing, err := s.repository.Get(ctx, investment.ID)
		if err != nil {
			return models.Investment{}, err
		}
		investment.GroupSlug = existing.GroupSlug
	} else if _, err := s.groups.GetBySlug(ctx, investment.GroupSlug); err != nil {
		return models.Investment{}, err
	}

	return s.repository.Update(ctx, investment)
}

func (s *investmentService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

func (s *investmentService) clean(investment models.Investment) models.Investment {
	investment.Title = s.sanitizer.PlainText(investment.Title)
	investment.Description = optionalText(s.sanitizer.PlainText, investment.Description)
	investment.ROI = optionalText(s.sanitizer.PlainText, investment.ROI)
	investment.ImageURL = optionalText(trimSpace, investment.ImageURL)
	investment.GroupSlug = strings.TrimSpace(investment.GroupSlug)
	return investment
}
