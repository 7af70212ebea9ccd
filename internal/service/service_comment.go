// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/invest-portal/internal/access"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
	"github.com/MKhiriev/invest-portal/models"
)

type commentService struct {
	repository store.CommentRepository
	validator  validators.Validator
	sanitizer  validators.Sanitizer
	logger     *logger.Logger
}

func NewCommentService(repository store.CommentRepository, validator validators.Validator, sanitizer validators.Sanitizer, logger *logger.Logger) CommentService {
	return &commentService{
		repository: repository,
		validator:  validator,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (s *commentService) List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	filter.PageID = strings.TrimSpace(filter.PageID)
	return s.repository.List(ctx, filter)
}

func (s *commentService) Get(ctx context.Context, id int64) (models.Comment, error) {
	return s.repository.Get(ctx, id)
}

// Create posts a comment. An authenticated caller becomes its owner and any
// guest name is dropped; an anonymous caller must give a guest name. A reply
// must target an existing comment on the same page.
func (s *commentService) Create(ctx context.Context, identity models.Identity, comment models.Comment) (models.Comment, error) {
	comment.Content = s.sanitizer.PlainText(comment.Content)
	comment.PageID = strings.TrimSpace(comment.PageID)

	var fields []string
	if identity.Authenticated {
		comment.UserID = identity.UserID()
		comment.GuestName = nil
	} else {
		comment.UserID = nil
		comment.GuestName = optionalText(s.sanitizer.PlainText, comment.GuestName)
		fields = append(fields, validators.FieldGuestName)
	}

	if err := s.validator.Validate(ctx, comment, fields...); err != nil {
		return models.Comment{}, err
	}

	if comment.ParentID != nil {
		parent, err := s.repository.Get(ctx, *comment.ParentID)
		if errors.Is(err, store.ErrCommentNotFound) {
			return models.Comment{}, store.ErrParentCommentNotFound
		}
		if err != nil {
			return models.Comment{}, err
		}
		if parent.PageID != comment.PageID {
			return models.Comment{}, validators.ErrParentPageMismatch
		}
	}

	return s.repository.Create(ctx, comment)
}

// Update replaces the content of a comment owned by the caller. Admins may
// edit any comment, including guest comments.
func (s *commentService) Update(ctx context.Context, identity models.Identity, id int64, update models.CommentUpdate) (models.Comment, error) {
	if err := access.RequireAuthenticated(identity); err != nil {
		return models.Comment{}, err
	}

	update.Content = s.sanitizer.PlainText(update.Content)
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Comment{}, err
	}

	existing, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}

	if err = access.RequireOwnerOrAdmin(identity, existing.UserID); err != nil {
		logger.FromContext(ctx).Debug().Int64("comment_id", id).Int64("user_id", identity.User.UserID).Msg("comment update denied")
		return models.Comment{}, err
	}

	return s.repository.UpdateContent(ctx, id, update.Content)
}

// Delete removes a comment owned by the caller together with its direct
// replies. Admins may delete any comment.
func (s *commentService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if err := access.RequireAuthenticated(identity); err != nil {
		return err
	}

	existing, err := s.repository.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = access.RequireOwnerOrAdmin(identity, existing.UserID); err != nil {
		logger.FromContext(ctx).Debug().Int64("comment_id", id).Int64("user_id", identity.User.UserID).Msg("comment delete denied")
		return err
	}

	return s.repository.Delete(ctx, id)
}
