package sqlite

import (
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type DB struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH" default:"booktrackr.db"`
}

// NewSqliteDB opens the database file and applies the embedded goose migrations.
// The pool is limited to one connection, sqlite serialises writers anyway.
func NewSqliteDB(cfg *DB, migrations embed.FS) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping")
	}

	goose.SetBaseFS(migrations)
	if err = goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = goose.Up(db, "."); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrate")
	}
	return db, nil
}
