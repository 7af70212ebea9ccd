package service

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

type teamService struct {
	repository store.TeamRepository
	validator  validators.Validator
	sanitizer  validators.Sanitizer
	logger     *logger.Logger
}

func NewTeamService(repository store.TeamRepository, validator validators.Validator, sanitizer validators.Sanitizer, logger *logger.Logger) TeamService {
	return &teamService{
		repository: repository,
		validator:  validator,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (s *teamService) List(ctx context.Context) ([]models.TeamMember, error) {
	return s.repository.List(ctx)
}

func (s *teamService) Get(ctx context.Context, id int64) (models.TeamMember, error) {
	return s.repository.Get(ctx, id)
}

func (s *teamService) Create(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	member = s.clean(member)
	if err := s.validator.Validate(ctx, member); err != nil {
		return models.TeamMember{}, err
	}

	return s.repository.Create(ctx, member)
}

func (s *teamService) Update(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	member = s.clean(member)
	if err := s.validator.Validate(ctx, member); err != nil {
		return models.TeamMember{}, err
	}

	return s.repository.Update(ctx, member)
}

func (s *teamService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

func (s *teamService) clean(member models.TeamMember) models.TeamMember {
	member.Name = s.sanitizer.PlainText(member.Name)
	member.Position = s.sanitizer.PlainText(member.Position)
	member.Bio = optionalText(s.sanitizer.PlainText, member.Bio)
	member.ImageURL = optionalText(trimSpace, member.ImageURL)
	return member
}
