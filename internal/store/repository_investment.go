package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type investmentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewInvestmentRepository(db *DB, logger *logger.Logger) InvestmentRepository {
	return &investmentRepository{
		db:     db,
		logger: logger,
	}
}

func scanInvestment(row rowScanner) (models.Investment, error) {
	var (
		i          models.Investment
		groupTitle sql.NullString
	)
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.ROI, &i.ImageURL, &i.GroupSlug, &i.CreatedAt, &groupTitle)
	i.GroupTitle = groupTitle.String
	return i, err
}

var investmentConstraints = constraintErrors{ForeignKeyViolation: ErrInvestmentGroupNotFound}

// List returns investments newest first, optionally restricted to one group.
func (r *investmentRepository) List(ctx context.Context, filter models.InvestmentFilter) ([]models.Investment, error) {
	query, args, err := buildSelectInvestmentsQuery(r.db.builder, filter)
	if err != nil {
		return nil, buildError(ctx, "investmentRepository.List", err)
	}

	return selectAll(ctx, r.db, "investmentRepository.List", query, args, scanInvestment)
}

func (r *investmentRepository) Get(ctx context.Context, id int64) (models.Investment, error) {
	query, args, err := buildSelectInvestmentQuery(r.db.builder, id)
	if err != nil {
		return models.Investment{}, buildError(ctx, "investmentRepository.Get", err)
	}

	return selectOne(ctx, r.db, r.db, "investmentRepository.Get", query, args, scanInvestment, ErrInvestmentNotFound, nil)
}

// Create inserts the investment and reads it back with its group title.
func (r *investmentRepository) Create(ctx context.Context, investment models.Investment) (models.Investment, error) {
	query, args, err := buildInsertInvestmentQuery(r.db.builder, investment)
	if err != nil {
		return models.Investment{}, buildError(ctx, "investmentRepository.Create", err)
	}

	id, err := selectOne(ctx, r.db, r.db, "investmentRepository.Create", query, args, scanID, ErrInvestmentNotFound, investmentConstraints)
	if err != nil {
		return models.Investment{}, err
	}

	return r.Get(ctx, id)
}

func (r *investmentRepository) Update(ctx context.Context, investment models.Investment) (models.Investment, error) {
	query, args, err := buildUpdateInvestmentQuery(r.db.builder, investment)
	if err != nil {
		return models.Investment{}, buildError(ctx, "investmentRepository.Update", err)
	}

	if _, err = selectOne(ctx, r.db, r.db, "investmentRepository.Update", query, args, scanID, ErrInvestmentNotFound, investmentConstraints); err != nil {
		return models.Investment{}, err
	}

	return r.Get(ctx, investment.ID)
}

func (r *investmentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteByIDQuery(r.db.builder, tableInvestments, id)
	if err != nil {
		return buildError(ctx, "investmentRepository.Delete", err)
	}

	return execAffecting(ctx, r.db, r.db, "investmentRepository.Delete", query, args, ErrInvestmentNotFound, nil)
}
