package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type aboutRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAboutRepository(db *DB, logger *logger.Logger) AboutRepository {
	return &aboutRepository{
		db:     db,
		logger: logger,
	}
}

func scanAboutSection(row rowScanner) (models.AboutSection, error) {
	var s models.AboutSection
	err := row.Scan(&s.ID, &s.Title, &s.Content, &s.OrderIndex, &s.ImageURL, &s.CreatedAt)
	return s, err
}

// List returns sections in display order.
func (r *aboutRepository) List(ctx context.Context) ([]models.AboutSection, error) {
	query, args, err := buildSelectAboutSectionsQuery(r.db.builder)
	if err != nil {
		return nil, buildError(ctx, "aboutRepository.List", err)
	}

	return selectAll(ctx, r.db, "aboutRepository.List", query, args, scanAboutSection)
}

func (r *aboutRepository) Get(ctx context.Context, id int64) (models.AboutSection, error) {
	query, args, err := buildSelectAboutSectionQuery(r.db.builder, id)
	if err != nil {
		return models.AboutSection{}, buildError(ctx, "aboutRepository.Get", err)
	}

	return selectOne(ctx, r.db, r.db, "aboutRepository.Get", query, args, scanAboutSection, ErrAboutSectionNotFound, nil)
}

// Create inserts the section. Without an explicit OrderIndex it is appended
// after the current last section; the lookup and the insert share one
// transaction, which on PostgreSQL holds a table lock so concurrent appends
// get distinct indexes.
func (r *aboutRepository) Create(ctx context.Context, section models.AboutSection) (models.AboutSection, error) {
	log := logger.FromContext(ctx)

	var created models.AboutSection
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		orderIndex := 0
		if section.OrderIndex != nil {
			orderIndex = *section.OrderIndex
		} else {
			if r.db.Dialect() == DialectPostgres {
				if _, err := tx.ExecContext(ctx, lockAboutSections); err != nil {
					log.Err(err).Str("func", "aboutRepository.Create").Msg("failed to lock about sections")
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
			if err := tx.QueryRowContext(ctx, selectNextAboutOrderIndex).Scan(&orderIndex); err != nil {
				log.Err(err).Str("func", "aboutRepository.Create").Msg("failed to compute next order index")
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		query, args, err := buildInsertAboutSectionQuery(r.db.builder, section, orderIndex)
		if err != nil {
			return buildError(ctx, "aboutRepository.Create", err)
		}

		created, err = selectOne(ctx, r.db, tx, "aboutRepository.Create", query, args, scanAboutSection, ErrAboutSectionNotFound, nil)
		return err
	})
	if err != nil {
		return models.AboutSection{}, err
	}

	return created, nil
}

func (r *aboutRepository) Update(ctx context.Context, section models.AboutSection) (models.AboutSection, error) {
	query, args, err := buildUpdateAboutSectionQuery(r.db.builder, section)
	if err != nil {
		return models.AboutSection{}, buildError(ctx, "aboutRepository.Update", err)
	}

	return selectOne(ctx, r.db, r.db, "aboutRepository.Update", query, args, scanAboutSection, ErrAboutSectionNotFound, nil)
}

// Delete removes the section and renumbers the rest 0..n-1 in the same
// transaction.
func (r *aboutRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, tableAboutSections, id)
	if err != nil {
		return buildError(ctx, "aboutRepository.Delete", err)
	}

	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := execAffecting(ctx, r.db, tx, "aboutRepository.Delete", query, args, ErrAboutSectionNotFound, nil); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, reindexAboutSections); err != nil {
			log.Err(err).Str("func", "aboutRepository.Delete").Int64("id", id).Msg("failed to reindex about sections")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}
