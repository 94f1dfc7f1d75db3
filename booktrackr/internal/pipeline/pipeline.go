// Package pipeline derives the displayed page from the full collection:
// filter by status, filter by search text, sort, paginate.
// Every function here is pure; the input collection is never modified.
package pipeline

import (
	"sort"
	"strings"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
)

const DefaultPageSize = 6

type Result struct {
	Items         []model.Book
	TotalMatching int
	TotalPages    int
	Page          int
	PageSize      int
}

func Derive(c model.Collection, q model.Query) Result {
	books := FilterStatus(c, q.Status)
	books = FilterText(books, q.Text, q.Fields)
	Sort(books, q.Sort)

	items, page, totalPages := Paginate(books, q.Page, q.PageSize)
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return Result{
		Items:         items,
		TotalMatching: len(books),
		TotalPages:    totalPages,
		Page:          page,
		PageSize:      size,
	}
}

// FilterStatus returns a new slice with the records whose status equals s.
// Empty s or "All" keeps everything.
func FilterStatus(c model.Collection, s model.Status) []model.Book {
	out := make([]model.Book, 0, len(c))
	for _, b := range c {
		if s == "" || s == model.StatusAll || b.Status == s {
			out = append(out, b)
		}
	}
	return out
}

// FilterText keeps records where text is a case-insensitive substring of any of fields.
func FilterText(books []model.Book, text string, fields []model.Field) []model.Book {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return books
	}
	if len(fields) == 0 {
		fields = model.DefaultSearchFields
	}
	out := books[:0:0]
	for _, b := range books {
		if matches(b, needle, fields) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b model.Book, needle string, fields []model.Field) bool {
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), needle)
	}
	for _, f := range fields {
		switch f {
		case model.FieldTitle:
			if contains(b.Title) {
				return true
			}
		case model.FieldAuthor:
			if contains(b.Author) {
				return true
			}
		case model.FieldSeries:
			if contains(b.Series) {
				return true
			}
		case model.FieldGenre:
			if contains(b.Genre) {
				return true
			}
		case model.FieldNotes:
			if contains(b.Notes) {
				return true
			}
		case model.FieldTags:
			for _, tag := range b.Tags {
				if contains(tag) {
					return true
				}
			}
		}
	}
	return false
}

// Sort orders books in place. Text keys ascend case-insensitively, numeric keys
// and dateAdded descend. Equal keys keep their relative order.
func Sort(books []model.Book, key model.SortKey) {
	less := lessFunc(key)
	if less == nil {
		return
	}
	sort.SliceStable(books, func(i, j int) bool {
		return less(books[i], books[j])
	})
}

func lessFunc(key model.SortKey) func(a, b model.Book) bool {
	text := func(get func(model.Book) string) func(a, b model.Book) bool {
		return func(a, b model.Book) bool {
			return strings.ToLower(get(a)) < strings.ToLower(get(b))
		}
	}
	desc := func(get func(model.Book) int) func(a, b model.Book) bool {
		return func(a, b model.Book) bool {
			return get(a) > get(b)
		}
	}

	switch key {
	case model.SortTitle:
		return text(func(b model.Book) string { return b.Title })
	case model.SortAuthor:
		return text(func(b model.Book) string { return b.Author })
	case model.SortSeries:
		return text(func(b model.Book) string { return b.Series })
	case model.SortGenre:
		return text(func(b model.Book) string { return b.Genre })
	case model.SortStatus:
		return text(func(b model.Book) string { return string(b.Status) })
	case model.SortRating:
		return desc(model.Book.RatingValue)
	case model.SortBookNumber:
		return desc(func(b model.Book) int { return b.BookNumber.Int() })
	case model.SortDateAdded:
		return func(a, b model.Book) bool {
			return a.DateAdded.After(b.DateAdded)
		}
	default:
		return nil
	}
}

// Paginate slices the 1-based page out of books. A page outside [1, totalPages]
// falls back to page 1, not to the last page.
func Paginate(books []model.Book, page, size int) (items []model.Book, current, totalPages int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(books)
	totalPages = (total + size - 1) / size
	if page < 1 || page > totalPages {
		page = 1
	}
	if total == 0 {
		return []model.Book{}, page, 0
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return books[start:end], page, totalPages
}
