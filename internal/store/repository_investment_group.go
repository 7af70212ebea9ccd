package store

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type investmentGroupRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewInvestmentGroupRepository(db *DB, logger *logger.Logger) InvestmentGroupRepository {
	return &investmentGroupRepository{
		db:     db,
		logger: logger,
	}
}

func scanInvestmentGroup(row rowScanner) (models.InvestmentGroup, error) {
	var g models.InvestmentGroup
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Slug, &g.CreatedAt)
	return g, err
}

var slugConstraints = constraintErrors{UniqueViolation: ErrSlugAlreadyExists}

// List returns every group ordered by title.
func (r *investmentGroupRepository) List(ctx context.Context) ([]models.InvestmentGroup, error) {
	query, args, err := buildSelectInvestmentGroupsQuery(r.db.builder)
	if err != nil {
		return nil, buildError(ctx, "investmentGroupRepository.List", err)
	}

	return selectAll(ctx, r.db, "investmentGroupRepository.List", query, args, scanInvestmentGroup)
}

func (r *investmentGroupRepository) GetByID(ctx context.Context, id int64) (models.InvestmentGroup, error) {
	query, args, err := buildSelectInvestmentGroupByIDQuery(r.db.builder, id)
	if err != nil {
		return models.InvestmentGroup{}, buildError(ctx, "investmentGroupRepository.GetByID", err)
	}

	return selectOne(ctx, r.db, r.db, "investmentGroupRepository.GetByID", query, args, scanInvestmentGroup, ErrInvestmentGroupNotFound, nil)
}

func (r *investmentGroupRepository) GetBySlug(ctx context.Context, slug string) (models.InvestmentGroup, error) {
	query, args, err := buildSelectInvestmentGroupBySlugQuery(r.db.builder, slug)
	if err != nil {
		return models.InvestmentGroup{}, buildError(ctx, "investmentGroupRepository.GetBySlug", err)
	}

	return selectOne(ctx, r.db, r.db, "investmentGroupRepository.GetBySlug", query, args, scanInvestmentGroup, ErrInvestmentGroupNotFound, nil)
}

func (r *investmentGroupRepository) Create(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error) {
	query, args, err := buildInsertInvestmentGroupQuery(r.db.builder, group)
	if err != nil {
		return models.InvestmentGroup{}, buildError(ctx, "investmentGroupRepository.Create", err)
	}

	return selectOne(ctx, r.db, r.db, "investmentGroupRepository.Create", query, args, scanInvestmentGroup, ErrInvestmentGroupNotFound, slugConstraints)
}

// Update rewrites the group. A changed slug cascades to its investments.
func (r *investmentGroupRepository) Update(ctx context.Context, group models.InvestmentGroup) (models.InvestmentGroup, error) {
	query, args, err := buildUpdateInvestmentGroupQuery(r.db.builder, group)
	if err != nil {
		return models.InvestmentGroup{}, buildError(ctx, "investmentGroupRepository.Update", err)
	}

	return selectOne(ctx, r.db, r.db, "investmentGroupRepository.Update", query, args, scanInvestmentGroup, ErrInvestmentGroupNotFound, slugConstraints)
}

// Delete removes an unused group. Investments still referencing it yield
// [ErrInvestmentGroupInUse].
func (r *investmentGroupRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteByIDQuery(r.db.builder, tableInvestmentGroups, id)
	if err != nil {
		return buildError(ctx, "investmentGroupRepository.Delete", err)
	}

	return execAffecting(ctx, r.db, r.db, "investmentGroupRepository.Delete", query, args,
		ErrInvestmentGroupNotFound, constraintErrors{ForeignKeyViolation: ErrInvestmentGroupInUse})
}
