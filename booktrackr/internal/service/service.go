package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/errs"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/events"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/pipeline"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/render"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/shelf"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/stats"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/store"
	"github.com/Astemirdum/booktrackr/pkg/kafka"
)

type Config struct {
	PageSize     int
	SearchFields []model.Field
}

// Service owns the collection. Commands are serialized: each one loads the
// stored collection, applies a shelf command, saves and then publishes an event.
type Service struct {
	mu    sync.Mutex
	store *store.Store
	pub   events.Publisher
	log   *zap.Logger

	pageSize int
	fields   []model.Field

	now   func() time.Time
	newID func() string
}

func NewService(st *store.Store, pub events.Publisher, cfg Config, log *zap.Logger) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = pipeline.DefaultPageSize
	}
	if len(cfg.SearchFields) == 0 {
		cfg.SearchFields = model.DefaultSearchFields
	}
	return &Service{
		store:    st,
		pub:      pub,
		log:      log.Named("service"),
		pageSize: cfg.PageSize,
		fields:   cfg.SearchFields,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// View recomputes the displayed page for q. With grouped set, the page items
// are also partitioned by status.
func (s *Service) View(ctx context.Context, q model.Query, grouped bool) (model.View, error) {
	if !q.Sort.Valid() {
		return model.View{}, fmt.Errorf("%w: unknown sort key %q", errs.ErrValidation, q.Sort)
	}
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	if len(q.Fields) == 0 {
		q.Fields = s.fields
	}

	s.mu.Lock()
	c := s.store.Load(ctx)
	s.mu.Unlock()

	res := pipeline.Derive(c, q)
	v := model.View{
		Paging: model.Paging{
			Page:          res.Page,
			PageSize:      res.PageSize,
			TotalElements: res.TotalMatching,
			TotalPages:    res.TotalPages,
		},
		Items: render.Cards(res.Items),
		Chips: render.Chips(q),
		Stats: stats.Aggregate(c),
	}
	if grouped {
		v.Groups = render.Group(v.Items)
	}
	return v, nil
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return shelf.Find(s.store.Load(ctx), id)
}

func (s *Service) AddBook(ctx context.Context, b model.Book) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, added, err := shelf.Add(s.store.Load(ctx), b, s.newID(), s.now())
	if err != nil {
		return model.Book{}, err
	}
	if err = s.store.Save(ctx, c); err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.EventAdded, added, len(c))
	return added, nil
}

func (s *Service) UpdateBook(ctx context.Context, id string, b model.Book) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, updated, err := shelf.Update(s.store.Load(ctx), id, b)
	if err != nil {
		return model.Book{}, err
	}
	if err = s.store.Save(ctx, c); err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.EventUpdated, updated, len(c))
	return updated, nil
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, removed, err := shelf.Delete(s.store.Load(ctx), id)
	if err != nil {
		return err
	}
	if err = s.store.Save(ctx, c); err != nil {
		return err
	}
	s.publish(ctx, kafka.EventDeleted, removed, len(c))
	return nil
}

func (s *Service) MoveBook(ctx context.Context, id string, position int) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := shelf.Move(s.store.Load(ctx), id, position)
	if err != nil {
		return model.Book{}, err
	}
	if err = s.store.Save(ctx, c); err != nil {
		return model.Book{}, err
	}
	moved, _ := shelf.Find(c, id)
	s.publish(ctx, kafka.EventMoved, moved, len(c))
	return moved, nil
}

// ImportBooks replaces the whole collection with the payload. A rejected
// payload leaves the stored collection as it was.
func (s *Service) ImportBooks(ctx context.Context, raw []byte) (model.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.Replace(ctx, raw, s.now())
	if err != nil {
		return nil, err
	}
	s.log.Info("collection imported", zap.Int("count", len(c)))
	s.pub.Publish(ctx, kafka.BookEvent{
		Timestamp: s.now(),
		EventType: kafka.EventImported,
		Count:     len(c),
	})
	return c, nil
}

func (s *Service) ExportBooks(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.Export(s.store.Load(ctx))
}

func (s *Service) Stats(ctx context.Context) model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.Aggregate(s.store.Load(ctx))
}

func (s *Service) Suggest(ctx context.Context, field model.Field, prefix string) ([]string, error) {
	if field != model.FieldTitle && field != model.FieldAuthor {
		return nil, fmt.Errorf("%w: suggestions are available for title and author only", errs.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return shelf.Suggest(s.store.Load(ctx), field, prefix, shelf.DefaultSuggestLimit), nil
}

func (s *Service) Theme(ctx context.Context) model.Theme {
	return s.store.Theme(ctx)
}

func (s *Service) SetTheme(ctx context.Context, t model.Theme) error {
	return s.store.SetTheme(ctx, t)
}

func (s *Service) Progress(percent float64, total int) int {
	return shelf.ProgressToPages(percent, total)
}

func (s *Service) publish(ctx context.Context, typ kafka.EventType, b model.Book, count int) {
	s.pub.Publish(ctx, kafka.BookEvent{
		Timestamp: s.now(),
		EventType: typ,
		BookID:    b.ID,
		Title:     b.Title,
		Status:    string(b.Status),
		Count:     count,
	})
}
