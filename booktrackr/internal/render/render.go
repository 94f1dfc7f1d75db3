package render

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
)

const (
	PlaceholderCover = "https://via.placeholder.com/150x200?text=No+Cover"
	NoNotes          = "No notes yet."

	maxStars   = 5
	filledStar = "★"
	emptyStar  = "☆"
)

// Progress is pagesRead/pagesTotal as a percent clamped to [0, 100]; 0 when the total is unknown.
func Progress(b model.Book) float64 {
	if b.PagesTotal <= 0 {
		return 0
	}
	p := float64(b.PagesRead) / float64(b.PagesTotal) * 100
	return math.Max(0, math.Min(100, p))
}

// Stars renders rating filled marks followed by the remaining empty marks.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}
	return strings.Repeat(filledStar, rating) + strings.Repeat(emptyStar, maxStars-rating)
}

// Cover passes through absolute http(s) urls only.
func Cover(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlaceholderCover
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return PlaceholderCover
	}
	return u.String()
}

func Card(b model.Book) model.Card {
	c := model.Card{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Genre:      b.Genre,
		Tags:       b.Tags,
		PagesLabel: fmt.Sprintf("%d/%d pages", b.PagesRead, b.PagesTotal),
		Progress:   Progress(b),
		Stars:      Stars(b.RatingValue()),
		Rating:     b.RatingValue(),
		Status:     b.Status,
		Badge:      b.Status.Slug(),
		CoverURL:   Cover(b.CoverURL),
		Notes:      b.Notes,
		DateAdded:  b.DateAdded,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if b.Series != "" {
		c.SeriesLabel = b.Series
		if b.BookNumber != "" {
			c.SeriesLabel += " #" + string(b.BookNumber)
		}
	}
	if strings.TrimSpace(c.Notes) == "" {
		c.Notes = NoNotes
	}
	return c
}

func Cards(books []model.Book) []model.Card {
	out := make([]model.Card, 0, len(books))
	for _, b := range books {
		out = append(out, Card(b))
	}
	return out
}

// Group partitions cards by status in display order. Empty groups are omitted,
// cards with an unknown status belong to no group.
func Group(cards []model.Card) []model.Group {
	groups := make([]model.Group, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		var items []model.Card
		for _, c := range cards {
			if c.Status == s {
				items = append(items, c)
			}
		}
		if len(items) == 0 {
			continue
		}
		groups = append(groups, model.Group{Status: s, Badge: s.Slug(), Items: items})
	}
	return groups
}

// Chips lists the active criteria of q.
func Chips(q model.Query) []model.Chip {
	chips := []model.Chip{}
	if text := strings.TrimSpace(q.Text); text != "" {
		chips = append(chips, model.Chip{Kind: model.ChipSearch, Label: fmt.Sprintf("Search: %q", text), Value: text})
	}
	if q.Status != "" && q.Status != model.StatusAll {
		chips = append(chips, model.Chip{Kind: model.ChipStatus, Label: "Status: " + string(q.Status), Value: string(q.Status)})
	}
	if q.Sort != "" && q.Sort != model.SortDefault {
		chips = append(chips, model.Chip{Kind: model.ChipSort, Label: "Sort: " + string(q.Sort), Value: string(q.Sort)})
	}
	return chips
}
