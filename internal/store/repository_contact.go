package store

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func scanContactMessage(row rowScanner) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Date, &m.IsRead, &m.CreatedAt)
	return m, err
}

func (r *contactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	query, args, err := buildSelectContactMessagesQuery(r.db.builder)
	if err != nil {
		return nil, buildError(ctx, "contactRepository.List", err)
	}

	return selectAll(ctx, r.db, "contactRepository.List", query, args, scanContactMessage)
}

func (r *contactRepository) Get(ctx context.Context, id int64) (models.ContactMessage, error) {
	query, args, err := buildSelectContactMessageQuery(r.db.builder, id)
	if err != nil {
		return models.ContactMessage{}, buildError(ctx, "contactRepository.Get", err)
	}

	return selectOne(ctx, r.db, r.db, "contactRepository.Get", query, args, scanContactMessage, ErrContactMessageNotFound, nil)
}

func (r *contactRepository) Create(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	query, args, err := buildInsertContactMessageQuery(r.db.builder, message)
	if err != nil {
		return models.ContactMessage{}, buildError(ctx, "contactRepository.Create", err)
	}

	return selectOne(ctx, r.db, r.db, "contactRepository.Create", query, args, scanContactMessage, ErrContactMessageNotFound, nil)
}

// UpdateStatus marks a message read or unread.
func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error) {
	query, args, err := buildUpdateContactStatusQuery(r.db.builder, id, isRead)
	if err != nil {
		return models.ContactMessage{}, buildError(ctx, "contactRepository.UpdateStatus", err)
	}

	return selectOne(ctx, r.db, r.db, "contactRepository.UpdateStatus", query, args, scanContactMessage, ErrContactMessageNotFound, nil)
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteByIDQuery(r.db.builder, tableContactMessages, id)
	if err != nil {
		return buildError(ctx, "contactRepository.Delete", err)
	}

	return execAffecting(ctx, r.db, r.db, "contactRepository.Delete", query, args, ErrContactMessageNotFound, nil)
}
