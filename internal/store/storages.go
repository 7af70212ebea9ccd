package store

import (
	"github.com/MKhiriev/invest-portal/internal/logger"
)

// Storages aggregates every repository built on one database connection. It
// owns the connection and closes it in Close.
type Storages struct {
	Users            UserRepository
	Team             TeamRepository
	News             NewsRepository
	About            AboutRepository
	Contact          ContactRepository
	Comments         CommentRepository
	InvestmentGroups InvestmentGroupRepository
	Investments      InvestmentRepository

	db *DB
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Str("dialect", string(db.Dialect())).Msg("creating storages")

	return &Storages{
		Users:            NewUserRepository(db, log),
		Team:             NewTeamRepository(db, log),
		News:             NewNewsRepository(db, log),
		About:            NewAboutRepository(db, log),
		Contact:          NewContactRepository(db, log),
		Comments:         NewCommentRepository(db, log),
		InvestmentGroups: NewInvestmentGroupRepository(db, log),
		Investments:      NewInvestmentRepository(db, log),
		db:               db,
	}
}

// Health returns the connection as a [HealthChecker] for the health worker.
func (s *Storages) Health() HealthChecker {
	return s.db
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
