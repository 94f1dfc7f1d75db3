package handler

import (
	"context"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	View(ctx context.Context, q model.Query, grouped bool) (model.View, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	AddBook(ctx context.Context, b model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, id string, b model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	MoveBook(ctx context.Context, id string, position int) (model.Book, error)
	ImportBooks(ctx context.Context, raw []byte) (model.Collection, error)
	ExportBooks(ctx context.Context) ([]byte, error)
	Stats(ctx context.Context) model.Stats
	Suggest(ctx context.Context, field model.Field, prefix string) ([]string, error)
	Theme(ctx context.Context) model.Theme
	SetTheme(ctx context.Context, t model.Theme) error
	Progress(percent float64, total int) int
}

var _ BookService = (*service.Service)(nil)
