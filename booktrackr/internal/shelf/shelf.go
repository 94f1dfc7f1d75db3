// Package shelf holds the commands that change a collection. Each command takes
// the current collection and returns a new one; the input is left untouched.
package shelf

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/errs"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
)

const (
	DefaultSuggestLimit = 5
	dateLayout          = "2006-01-02"
)

// Normalize trims text fields, drops empty tags, treats rating 0 as absent and
// clamps pagesRead to pagesTotal when the total is known.
func Normalize(b model.Book) model.Book {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.Series = strings.TrimSpace(b.Series)
	b.BookNumber = model.BookNumber(strings.TrimSpace(string(b.BookNumber)))
	b.Genre = strings.TrimSpace(b.Genre)
	b.Notes = strings.TrimSpace(b.Notes)
	b.CoverURL = strings.TrimSpace(b.CoverURL)
	b.StartDate = strings.TrimSpace(b.StartDate)
	b.FinishDate = strings.TrimSpace(b.FinishDate)

	tags := make([]string, 0, len(b.Tags))
	for _, tag := range b.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	b.Tags = tags

	if b.Rating != nil && *b.Rating == 0 {
		b.Rating = nil
	}
	if b.PagesTotal > 0 && b.PagesRead > b.PagesTotal {
		b.PagesRead = b.PagesTotal
	}
	return b
}

// Validate checks a normalized record submitted through the add/edit form.
func Validate(b model.Book) error {
	var problems []string
	if b.Title == "" {
		problems = append(problems, "title is required")
	}
	if b.Author == "" {
		problems = append(problems, "author is required")
	}
	if !b.Status.Valid() {
		problems = append(problems, fmt.Sprintf("status %q must be one of %q, %q, %q",
			b.Status, model.StatusToRead, model.StatusReading, model.StatusFinished))
	}
	if b.Rating != nil && (*b.Rating < 1 || *b.Rating > 5) {
		problems = append(problems, "rating must be between 1 and 5")
	}
	if b.PagesRead < 0 || b.PagesTotal < 0 {
		problems = append(problems, "pages must not be negative")
	}

	var start, finish time.Time
	var err error
	if b.StartDate != "" {
		if start, err = time.Parse(dateLayout, b.StartDate); err != nil {
			problems = append(problems, "startDate must be YYYY-MM-DD")
		}
	}
	if b.FinishDate != "" {
		if finish, err = time.Parse(dateLayout, b.FinishDate); err != nil {
			problems = append(problems, "finishDate must be YYYY-MM-DD")
		}
	}
	if !start.IsZero() && !finish.IsZero() && finish.Before(start) {
		problems = append(problems, "finishDate must not be before startDate")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func indexOf(c model.Collection, id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

func Find(c model.Collection, id string) (model.Book, error) {
	i := indexOf(c, id)
	if i < 0 {
		return model.Book{}, fmt.Errorf("book %s: %w", id, errs.ErrNotFound)
	}
	return c[i], nil
}

// Add appends a new record with the given id and creation time.
func Add(c model.Collection, b model.Book, id string, now time.Time) (model.Collection, model.Book, error) {
	b = Normalize(b)
	if err := Validate(b); err != nil {
		return c, model.Book{}, err
	}
	b.ID = id
	b.DateAdded = now
	out := append(c.Clone(), b)
	return out, b, nil
}

// Update replaces the record with the given id in place, keeping its id and dateAdded.
func Update(c model.Collection, id string, b model.Book) (model.Collection, model.Book, error) {
	i := indexOf(c, id)
	if i < 0 {
		return c, model.Book{}, fmt.Errorf("book %s: %w", id, errs.ErrNotFound)
	}
	b = Normalize(b)
	if err := Validate(b); err != nil {
		return c, model.Book{}, err
	}
	b.ID = c[i].ID
	b.DateAdded = c[i].DateAdded
	out := c.Clone()
	out[i] = b
	return out, b, nil
}

func Delete(c model.Collection, id string) (model.Collection, model.Book, error) {
	i := indexOf(c, id)
	if i < 0 {
		return c, model.Book{}, fmt.Errorf("book %s: %w", id, errs.ErrNotFound)
	}
	removed := c[i]
	out := make(model.Collection, 0, len(c)-1)
	out = append(out, c[:i].Clone()...)
	out = append(out, c[i+1:].Clone()...)
	return out, removed, nil
}

// Move puts the record at the 0-based position, clamped to the collection bounds.
func Move(c model.Collection, id string, position int) (model.Collection, error) {
	i := indexOf(c, id)
	if i < 0 {
		return c, fmt.Errorf("book %s: %w", id, errs.ErrNotFound)
	}
	if position < 0 {
		position = 0
	}
	if position > len(c)-1 {
		position = len(c) - 1
	}
	out := c.Clone()
	b := out[i]
	out = append(out[:i], out[i+1:]...)
	out = append(out[:position], append(model.Collection{b}, out[position:]...)...)
	return out, nil
}

// Import normalizes a decoded import payload. Missing or repeated ids are
// regenerated, a zero dateAdded becomes now, out-of-range ratings and negative
// page counts are dropped. Unknown statuses are kept as they are. A record
// without title or author rejects the whole import.
func Import(books []model.Book, newID func() string, now time.Time) (model.Collection, error) {
	out := make(model.Collection, 0, len(books))
	seen := make(map[string]struct{}, len(books))
	for i, b := range books {
		b = Normalize(b)
		if b.Title == "" || b.Author == "" {
			return nil, fmt.Errorf("%w: record %d: title and author are required", errs.ErrValidation, i)
		}
		if b.Rating != nil && (*b.Rating < 1 || *b.Rating > 5) {
			b.Rating = nil
		}
		if b.PagesTotal < 0 {
			b.PagesTotal = 0
		}
		if b.PagesRead < 0 {
			b.PagesRead = 0
		}
		b.ID = strings.TrimSpace(b.ID)
		if _, dup := seen[b.ID]; b.ID == "" || dup {
			b.ID = newID()
		}
		seen[b.ID] = struct{}{}
		if b.DateAdded.IsZero() {
			b.DateAdded = now
		}
		out = append(out, b)
	}
	return out, nil
}

// Suggest returns up to limit distinct values of field (title or author) that
// start with prefix, case-insensitively, in collection order.
func Suggest(c model.Collection, field model.Field, prefix string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	out := []string{}
	if prefix == "" {
		return out
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	seen := map[string]struct{}{}
	for _, b := range c {
		var v string
		switch field {
		case model.FieldTitle:
			v = b.Title
		case model.FieldAuthor:
			v = b.Author
		default:
			return out
		}
		if _, ok := seen[v]; ok || !strings.HasPrefix(strings.ToLower(v), prefix) {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

// ProgressToPages converts a progress slider percent into pages read.
// An unknown total counts as one page. A non-finite percent reads as zero.
func ProgressToPages(percent float64, total int) int {
	if total <= 0 {
		total = 1
	}
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0
	}
	percent = math.Max(0, math.Min(100, percent))
	return int(math.Round(percent / 100 * float64(total)))
}
