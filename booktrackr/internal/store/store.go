package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/errs"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/repository"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/shelf"
)

// Store persists the whole collection in one slot, overwriting it on every save.
type Store struct {
	repo  repository.Repository
	log   *zap.Logger
	newID func() string
}

func New(repo repository.Repository, log *zap.Logger) *Store {
	return &Store{
		repo:  repo,
		log:   log.Named("store"),
		newID: uuid.NewString,
	}
}

// Load never fails: a missing slot is an empty collection, an unreadable or
// corrupt one is reported and treated as empty. A corrupt value is copied to
// the backup slot first, so the next save does not lose it. Records stored
// without an id get one, and the collection is written back.
func (s *Store) Load(ctx context.Context) model.Collection {
	raw, err := s.repo.Get(ctx, repository.BooksSlot)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Warn("load collection, starting empty", zap.Error(err))
		}
		return model.Collection{}
	}

	books, err := Decode(raw)
	if err != nil {
		s.log.Warn("stored collection is corrupt, starting empty",
			zap.Error(err), zap.String("backup", repository.BooksBackupSlot))
		s.backup(ctx, raw)
		return model.Collection{}
	}

	c := model.Collection(books)
	if s.assignIDs(c) {
		if err = s.Save(ctx, c); err != nil {
			s.log.Warn("persist generated ids", zap.Error(err))
		}
	}
	return c
}

func (s *Store) backup(ctx context.Context, raw []byte) {
	if prev, err := s.repo.Get(ctx, repository.BooksBackupSlot); err == nil && bytes.Equal(prev, raw) {
		return
	}
	if err := s.repo.Put(ctx, repository.BooksBackupSlot, raw); err != nil {
		s.log.Error("back up corrupt collection", zap.Error(err))
	}
}

func (s *Store) assignIDs(c model.Collection) bool {
	seen := make(map[string]struct{}, len(c))
	changed := false
	for i := range c {
		if _, dup := seen[c[i].ID]; c[i].ID == "" || dup {
			c[i].ID = s.newID()
			changed = true
		}
		seen[c[i].ID] = struct{}{}
	}
	return changed
}

func (s *Store) Save(ctx context.Context, c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal collection")
	}
	if err = s.repo.Put(ctx, repository.BooksSlot, data); err != nil {
		return errors.Wrap(err, "save collection")
	}
	return nil
}

// Replace validates an import payload and, only if it is acceptable, overwrites
// the stored collection with it.
func (s *Store) Replace(ctx context.Context, raw []byte, now time.Time) (model.Collection, error) {
	books, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	c, err := shelf.Import(books, s.newID, now)
	if err != nil {
		return nil, err
	}
	if err = s.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) Theme(ctx context.Context) model.Theme {
	raw, err := s.repo.Get(ctx, repository.ThemeSlot)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Warn("load theme", zap.Error(err))
		}
		return model.ThemeLight
	}
	if t := model.Theme(raw); t.Valid() {
		return t
	}
	return model.ThemeLight
}

func (s *Store) SetTheme(ctx context.Context, t model.Theme) error {
	if !t.Valid() {
		return errs.ErrTheme
	}
	return errors.Wrap(s.repo.Put(ctx, repository.ThemeSlot, []byte(t)), "save theme")
}

// Decode parses a JSON array of book objects. Anything else is rejected.
func Decode(raw []byte) ([]model.Book, error) {
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return nil, errs.ErrImportJSON
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errs.ErrImportShape
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errs.ErrImportShape
	}
	books := make([]model.Book, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, fmt.Errorf("%w: record %d is not an object", errs.ErrImportShape, i)
		}
		var b model.Book
		if err := json.Unmarshal(item, &b); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", errs.ErrImportShape, i, err)
		}
		books = append(books, b)
	}
	return books, nil
}

// Export renders the collection as an indented JSON array.
func Export(c model.Collection) ([]byte, error) {
	if c == nil {
		c = model.Collection{}
	}
	return json.MarshalIndent(c, "", "  ")
}
