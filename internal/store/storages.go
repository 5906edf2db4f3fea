package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
)

// Supported goose dialect identifiers, chosen by the DSN scheme.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// Storages bundles the open database handle with the repositories built on
// top of it. Dialect records which backend the DSN selected so that the
// migration runner can pick the matching SQL directory.
type Storages struct {
	DB      *DB
	Dialect string

	UserRepository UserRepository
	BookRepository BookRepository
}

// NewStorages opens the record store selected by the configured DSN and
// wires the user and book repositories on top of it.
//
// A "postgres://" (or "postgresql://") DSN selects the pgx backend; any
// other non-empty value is treated as a SQLite database file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db      *DB
		dialect string
		err     error
	)

	if strings.HasPrefix(cfg.DB.DSN, "postgres://") || strings.HasPrefix(cfg.DB.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
		dialect = DialectPostgres
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
		dialect = DialectSQLite
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		Dialect:        dialect,
		UserRepository: NewUserRepository(db, log),
		BookRepository: NewBookRepository(db, log),
	}, nil
}
