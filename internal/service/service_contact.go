package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

type contactService struct {
	repository store.ContactRepository
	validator  validators.Validator
	sanitizer  validators.Sanitizer
	now        func() time.Time
	logger     *logger.Logger
}

func NewContactService(repository store.ContactRepository, validator validators.Validator, sanitizer validators.Sanitizer, logger *logger.Logger) ContactService {
	return &contactService{
		repository: repository,
		validator:  validator,
		sanitizer:  sanitizer,
		now:        time.Now,
		logger:     logger,
	}
}

// Submit stores a public contact-form message as unread. A missing date
// defaults to now.
func (s *contactService) Submit(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	message.Name = s.sanitizer.PlainText(message.Name)
	message.Email = strings.TrimSpace(message.Email)
	message.Subject = optionalText(s.sanitizer.PlainText, message.Subject)
	message.Message = s.sanitizer.PlainText(message.Message)
	message.IsRead = false

	if err := s.validator.Validate(ctx, message); err != nil {
		return models.ContactMessage{}, err
	}

	if message.Date == nil {
		now := s.now().UTC()
		message.Date = &now
	}

	created, err := s.repository.Create(ctx, message)
	if err != nil {
		return models.ContactMessage{}, err
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *contactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repository.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id int64) (models.ContactMessage, error) {
	return s.repository.Get(ctx, id)
}

func (s *contactService) UpdateStatus(ctx context.Context, id int64, update models.ContactStatusUpdate) (models.ContactMessage, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.ContactMessage{}, err
	}

	return s.repository.UpdateStatus(ctx, id, *update.IsRead)
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
