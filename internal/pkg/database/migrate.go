package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Migrate applies the embedded migrations for dialect.
func Migrate(db *sql.DB, dialect string) error {
	var dir string
	switch dialect {
	case DialectPostgres:
		dir = "migrations/postgres"
	case DialectSQLite:
		dir = "migrations/sqlite"
	default:
		return fmt.Errorf("unsupported migration dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// MigratePostgres runs the migrations through a database/sql handle over the pool.
func MigratePostgres(db *DB) error {
	return Migrate(stdlib.OpenDBFromPool(db.Pool), DialectPostgres)
}

// MigrateSQLite runs the SQLite migrations.
func MigrateSQLite(db *SQLiteDB) error {
	return Migrate(db.DB, DialectSQLite)
}
