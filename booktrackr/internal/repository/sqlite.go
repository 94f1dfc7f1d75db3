package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/errs"
)

type sqliteRepository struct {
	db  *sql.DB
	qb  sq.StatementBuilderType
	log *zap.Logger
}

func NewSqliteRepository(db *sql.DB, log *zap.Logger) (*sqliteRepository, error) {
	return &sqliteRepository{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(db),
		log: log.Named("repo"),
	}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, name string) ([]byte, error) {
	var value string
	err := r.qb.Select("value").
		From(slotsTableName).
		Where(sq.Eq{"name": name}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, errors.Wrap(err, "select slot")
	}
	return []byte(value), nil
}

func (r *sqliteRepository) Put(ctx context.Context, name string, value []byte) error {
	_, err := r.qb.Insert(slotsTableName).
		Columns("name", "value", "updated_at").
		Values(name, string(value), time.Now().UTC()).
		Suffix(upsertSuffix).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "upsert slot")
	}
	r.log.Debug("Put", zap.String("slot", name), zap.Int("bytes", len(value)))
	return nil
}
