package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/config"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/events"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/service"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/store"
)

// Admin works on the stored collection directly, without the HTTP service.
// No book events are published.
type Admin struct {
	svc   *service.Service
	close func()
}

type ListOptions struct {
	Query  string
	Status string
	Sort   string
	Page   int
	Size   int
}

func NewAdmin(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Admin, error) {
	repo, closeRepo, err := NewRepository(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Admin{
		svc:   newService(cfg, store.New(repo, log), events.Nop{}, log),
		close: closeRepo,
	}, nil
}

func (a *Admin) Close() {
	a.close()
}

func (a *Admin) Export(ctx context.Context) ([]byte, error) {
	return a.svc.ExportBooks(ctx)
}

// Import replaces the collection and returns the number of books stored.
func (a *Admin) Import(ctx context.Context, raw []byte) (int, error) {
	books, err := a.svc.ImportBooks(ctx, raw)
	if err != nil {
		return 0, err
	}
	return len(books), nil
}

func (a *Admin) Stats(ctx context.Context) model.Stats {
	return a.svc.Stats(ctx)
}

func (a *Admin) List(ctx context.Context, opts ListOptions) (model.View, error) {
	return a.svc.View(ctx, model.Query{
		Text:     opts.Query,
		Status:   model.Status(opts.Status),
		Sort:     model.SortKey(opts.Sort),
		Page:     opts.Page,
		PageSize: opts.Size,
	}, false)
}

func newService(cfg *config.Config, st *store.Store, pub events.Publisher, log *zap.Logger) *service.Service {
	return service.NewService(st, pub, service.Config{
		PageSize:     cfg.Pipeline.PageSize,
		SearchFields: cfg.Pipeline.Fields(),
	}, log)
}

// SortKeys lists the accepted ListOptions.Sort values.
func SortKeys() []string {
	return []string{
		string(model.SortTitle), string(model.SortAuthor), string(model.SortSeries), string(model.SortGenre),
		string(model.SortBookNumber), string(model.SortRating), string(model.SortStatus), string(model.SortDateAdded),
	}
}
