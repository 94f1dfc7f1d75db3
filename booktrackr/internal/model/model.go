package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Status string

const (
	StatusToRead   Status = "To Read"
	StatusReading  Status = "Reading"
	StatusFinished Status = "Finished"

	// StatusAll is the filter value that keeps every record.
	StatusAll Status = "All"
)

// Statuses lists the valid statuses in display order.
var Statuses = []Status{StatusToRead, StatusReading, StatusFinished}

func (s Status) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusFinished:
		return true
	}
	return false
}

// Slug is the lowercase-hyphenated badge label, "unknown" for out-of-enum values.
func (s Status) Slug() string {
	if !s.Valid() {
		return "unknown"
	}
	return strings.ToLower(strings.ReplaceAll(string(s), " ", "-"))
}

type Book struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Series     string     `json:"series,omitempty"`
	BookNumber BookNumber `json:"bookNumber,omitempty"`
	Genre      string     `json:"genre,omitempty"`
	Tags       []string   `json:"tags"`
	PagesRead  int        `json:"pagesRead"`
	PagesTotal int        `json:"pagesTotal"`
	Status     Status     `json:"status"`
	Rating     *int       `json:"rating,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CoverURL   string     `json:"coverUrl,omitempty"`
	StartDate  string     `json:"startDate,omitempty"`
	FinishDate string     `json:"finishDate,omitempty"`
	DateAdded  time.Time  `json:"dateAdded"`
}

// UnmarshalJSON also accepts the legacy "cover" key for the cover url.
func (b *Book) UnmarshalJSON(data []byte) error {
	type book Book
	aux := struct {
		*book
		Cover string `json:"cover"`
	}{book: (*book)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if b.CoverURL == "" {
		b.CoverURL = aux.Cover
	}
	return nil
}

func (b Book) RatingValue() int {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

// Collection is ordered; insertion order is the canonical order.
type Collection []Book

func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	out := make(Collection, len(c))
	for i := range c {
		out[i] = c[i].clone()
	}
	return out
}

func (b Book) clone() Book {
	if b.Tags != nil {
		b.Tags = append([]string{}, b.Tags...)
	}
	if b.Rating != nil {
		r := *b.Rating
		b.Rating = &r
	}
	return b
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// BookRequest is the add/edit form payload.
type BookRequest struct {
	Title      string     `json:"title" validate:"required"`
	Author     string     `json:"author" validate:"required"`
	Series     string     `json:"series"`
	BookNumber BookNumber `json:"bookNumber"`
	Genre      string     `json:"genre"`
	Tags       []string   `json:"tags"`
	PagesRead  int        `json:"pagesRead" validate:"gte=0"`
	PagesTotal int        `json:"pagesTotal" validate:"gte=0"`
	Status     Status     `json:"status" validate:"required"`
	Rating     *int       `json:"rating" validate:"omitempty,min=1,max=5"`
	Notes      string     `json:"notes"`
	CoverURL   string     `json:"coverUrl"`
	StartDate  string     `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	FinishDate string     `json:"finishDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r BookRequest) Book() Book {
	return Book{
		Title:      r.Title,
		Author:     r.Author,
		Series:     r.Series,
		BookNumber: r.BookNumber,
		Genre:      r.Genre,
		Tags:       r.Tags,
		PagesRead:  r.PagesRead,
		PagesTotal: r.PagesTotal,
		Status:     r.Status,
		Rating:     r.Rating,
		Notes:      r.Notes,
		CoverURL:   r.CoverURL,
		StartDate:  r.StartDate,
		FinishDate: r.FinishDate,
	}
}
