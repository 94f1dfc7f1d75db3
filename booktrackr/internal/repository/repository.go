package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/errs"
)

// Repository keeps named slots, each holding one serialized value.
type Repository interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, value []byte) error
}

const (
	slotsTableName = `slots`

	BooksSlot = "books"
	ThemeSlot = "theme"

	// BooksBackupSlot keeps the last books value that failed to decode.
	BooksBackupSlot = "books.backup"
)

const upsertSuffix = "on conflict (name) do update set value = excluded.value, updated_at = excluded.updated_at"

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) Get(ctx context.Context, name string) ([]byte, error) {
	query, args, err := qb.Select("value").
		From(slotsTableName).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value string
	if err = r.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		r.log.Error("Get", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, wrapPgErr(err)
	}
	return []byte(value), nil
}

func (r *repository) Put(ctx context.Context, name string, value []byte) error {
	query, args, err := qb.Insert(slotsTableName).
		Columns("name", "value", "updated_at").
		Values(name, string(value), time.Now().UTC()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return err
	}
	r.log.Debug("Put", zap.String("slot", name), zap.Int("bytes", len(value)))

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return wrapPgErr(err)
	}
	return nil
}

func wrapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return errors.Wrap(err, "slots table is missing, migrations not applied")
	}
	return err
}
