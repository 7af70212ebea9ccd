package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
)

const sqliteScheme = "sqlite://"

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDataSource(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite allows one writer; an in-memory database lives on one connection
	conn.SetMaxOpenConns(1)

	// ping database
	if err = pingWithRetry(ctx, conn, NewSQLiteErrorClassifier()); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, log), nil
}

// sqliteDataSource turns "sqlite://path" into a go-sqlite3 data source with
// foreign key enforcement enabled. "sqlite://:memory:" opens a private
// in-memory database.
func sqliteDataSource(dsn string) string {
	path := strings.TrimPrefix(dsn, sqliteScheme)

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	if path == ":memory:" || strings.HasPrefix(path, ":memory:?") {
		return "file:" + path + sep + "_foreign_keys=on"
	}

	return "file:" + path + sep + "_foreign_keys=on&_busy_timeout=5000"
}
