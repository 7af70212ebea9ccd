package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/invest-portal/internal/logger"
)

// querier is the subset of *sql.DB and *sql.Tx used by the helpers below.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type scanFunc[T any] func(row rowScanner) (T, error)

// constraintErrors maps classified constraint failures of one statement to
// domain errors.
type constraintErrors map[ErrorClassification]error

// statementError translates a driver error into a domain error when the
// statement's constraint table knows it, otherwise wraps it as sentinel.
func (db *DB) statementError(err error, constraints constraintErrors, sentinel error) error {
	if domainErr, ok := constraints[db.classify(err)]; ok {
		return domainErr
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// selectAll runs a multi-row query and scans every row.
func selectAll[T any](ctx context.Context, q querier, fn, query string, args []any, scan scanFunc[T]) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 16)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// selectOne runs a single-row query or a write with a RETURNING clause. An
// empty result yields notFound; constraint failures are mapped through
// constraints.
func selectOne[T any](ctx context.Context, db *DB, q querier, fn, query string, args []any, scan scanFunc[T], notFound error, constraints constraintErrors) (T, error) {
	log := logger.FromContext(ctx)

	item, err := scan(q.QueryRowContext(ctx, query, args...))
	if err == nil {
		return item, nil
	}

	var zero T
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", fn).Msg("no rows")
		return zero, notFound
	}

	mapped := db.statementError(err, constraints, ErrExecutingQuery)
	if errors.Is(mapped, ErrExecutingQuery) {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
	} else {
		log.Debug().Err(err).Str("func", fn).Msg("constraint violation")
	}

	return zero, mapped
}

// execAffecting runs a statement that must affect at least one row.
func execAffecting(ctx context.Context, db *DB, q querier, fn, query string, args []any, notFound error, constraints constraintErrors) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		mapped := db.statementError(err, constraints, ErrExecutingStatement)
		if errors.Is(mapped, ErrExecutingStatement) {
			log.Err(err).Str("func", fn).Msg("failed to execute statement")
		} else {
			log.Debug().Err(err).Str("func", fn).Msg("constraint violation")
		}
		return mapped
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

func buildError(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to build query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
