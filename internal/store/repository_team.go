package store

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type teamRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTeamRepository(db *DB, logger *logger.Logger) TeamRepository {
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

func scanTeamMember(row rowScanner) (models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.ImageURL, &m.CreatedAt)
	return m, err
}

// List returns all team members, newest first.
func (r *teamRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	query, args, err := buildSelectTeamMembersQuery(r.db.builder)
	if err != nil {
		return nil, buildError(ctx, "teamRepository.List", err)
	}

	return selectAll(ctx, r.db, "teamRepository.List", query, args, scanTeamMember)
}

func (r *teamRepository) Get(ctx context.Context, id int64) (models.TeamMember, error) {
	query, args, err := buildSelectTeamMemberQuery(r.db.builder, id)
	if err != nil {
		return models.TeamMember{}, buildError(ctx, "teamRepository.Get", err)
	}

	return selectOne(ctx, r.db, r.db, "teamRepository.Get", query, args, scanTeamMember, ErrTeamMemberNotFound, nil)
}

func (r *teamRepository) Create(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	query, args, err := buildInsertTeamMemberQuery(r.db.builder, member)
	if err != nil {
		return models.TeamMember{}, buildError(ctx, "teamRepository.Create", err)
	}

	return selectOne(ctx, r.db, r.db, "teamRepository.Create", query, args, scanTeamMember, ErrTeamMemberNotFound, nil)
}

func (r *teamRepository) Update(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	query, args, err := buildUpdateTeamMemberQuery(r.db.builder, member)
	if err != nil {
		return models.TeamMember{}, buildError(ctx, "teamRepository.Update", err)
	}

	return selectOne(ctx, r.db, r.db, "teamRepository.Update", query, args, scanTeamMember, ErrTeamMemberNotFound, nil)
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteByIDQuery(r.db.builder, tableTeamMembers, id)
	if err != nil {
		return buildError(ctx, "teamRepository.Delete", err)
	}

	return execAffecting(ctx, r.db, r.db, "teamRepository.Delete", query, args, ErrTeamMemberNotFound, nil)
}
