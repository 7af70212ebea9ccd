package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invest-portal/internal/adapter"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type clientInboxService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientInboxService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientInboxService {
	return &clientInboxService{adapter: serverAdapter, logger: logger}
}

func (s *clientInboxService) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.adapter.ListContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", mapAdapterError(err))
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}

func (s *clientInboxService) SetRead(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error) {
	message, err := s.adapter.SetContactMessageRead(ctx, id, isRead)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("update contact message %d: %w", id, mapAdapterError(err))
	}

	s.logger.Debug().Int64("id", id).Bool("is_read", isRead).Msg("contact message updated")
	return message, nil
}

func (s *clientInboxService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteContactMessage(ctx, id); err != nil {
		return fmt.Errorf("delete contact message %d: %w", id, mapAdapterError(err))
	}

	s.logger.Debug().Int64("id", id).Msg("contact message deleted")
	return nil
}
