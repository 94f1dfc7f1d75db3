package model

import "time"

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Card is a presentation-ready book.
type Card struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	SeriesLabel string    `json:"seriesLabel,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Tags        []string  `json:"tags"`
	PagesLabel  string    `json:"pagesLabel"`
	Progress    float64   `json:"progress"`
	Stars       string    `json:"stars"`
	Rating      int       `json:"rating"`
	Status      Status    `json:"status"`
	Badge       string    `json:"badge"`
	CoverURL    string    `json:"coverUrl"`
	Notes       string    `json:"notes"`
	DateAdded   time.Time `json:"dateAdded"`
}

type Group struct {
	Status Status `json:"status"`
	Badge  string `json:"badge"`
	Items  []Card `json:"items"`
}

type ChipKind string

const (
	ChipSearch ChipKind = "search"
	ChipStatus ChipKind = "status"
	ChipSort   ChipKind = "sort"
)

// Chip is a removable indicator of one active criterion.
type Chip struct {
	Kind  ChipKind `json:"kind"`
	Label string   `json:"label"`
	Value string   `json:"value"`
}

type StatusCounts struct {
	ToRead   int `json:"toRead"`
	Reading  int `json:"reading"`
	Finished int `json:"finished"`
}

func (c StatusCounts) Get(s Status) int {
	switch s {
	case StatusToRead:
		return c.ToRead
	case StatusReading:
		return c.Reading
	case StatusFinished:
		return c.Finished
	}
	return 0
}

type Stats struct {
	Status  StatusCounts   `json:"status"`
	Ratings [5]int         `json:"ratings"`
	Genres  map[string]int `json:"genres"`
	Total   int            `json:"total"`
}

// View is what one recompute-and-render pass produces.
type View struct {
	Paging `json:",inline"`
	Items  []Card  `json:"items"`
	Groups []Group `json:"groups,omitempty"`
	Chips  []Chip  `json:"chips"`
	Stats  Stats   `json:"stats"`
}
