package store

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.IsAdmin, &u.CreatedAt)
	return u, err
}

// CreateUser persists a new account and returns it with the server-assigned
// ID and CreatedAt.
//
// A unique violation on username yields [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, buildError(ctx, "userRepository.CreateUser", err)
	}

	return selectOne(ctx, r.db, r.db, "userRepository.CreateUser", query, args, scanUser,
		ErrUserNotFound, constraintErrors{UniqueViolation: ErrUsernameAlreadyExists})
}

// FindUserByUsername looks an account up by exact, case-sensitive username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, buildError(ctx, "userRepository.FindUserByUsername", err)
	}

	return selectOne(ctx, r.db, r.db, "userRepository.FindUserByUsername", query, args, scanUser, ErrUserNotFound, nil)
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, id)
	if err != nil {
		return models.User{}, buildError(ctx, "userRepository.FindUserByID", err)
	}

	return selectOne(ctx, r.db, r.db, "userRepository.FindUserByID", query, args, scanUser, ErrUserNotFound, nil)
}
