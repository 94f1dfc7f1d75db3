package model

import "strings"

type SortKey string

const (
	SortDefault    SortKey = "default"
	SortTitle      SortKey = "title"
	SortAuthor     SortKey = "author"
	SortSeries     SortKey = "series"
	SortGenre      SortKey = "genre"
	SortBookNumber SortKey = "bookNumber"
	SortRating     SortKey = "rating"
	SortStatus     SortKey = "status"
	SortDateAdded  SortKey = "dateAdded"
)

func (k SortKey) Valid() bool {
	switch k {
	case "", SortDefault, SortTitle, SortAuthor, SortSeries, SortGenre,
		SortBookNumber, SortRating, SortStatus, SortDateAdded:
		return true
	}
	return false
}

// Field names a searchable text field of a Book.
type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldSeries Field = "series"
	FieldGenre  Field = "genre"
	FieldTags   Field = "tags"
	FieldNotes  Field = "notes"
)

var DefaultSearchFields = []Field{FieldTitle, FieldAuthor, FieldSeries, FieldGenre, FieldTags}

func (f Field) Valid() bool {
	switch f {
	case FieldTitle, FieldAuthor, FieldSeries, FieldGenre, FieldTags, FieldNotes:
		return true
	}
	return false
}

// ParseFields reads a comma separated field list, unknown names are skipped.
func ParseFields(s string) []Field {
	var out []Field
	for _, part := range strings.Split(s, ",") {
		f := Field(strings.TrimSpace(part))
		if f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// Query is the input of the derivation pipeline.
type Query struct {
	Text     string  `json:"q,omitempty"`
	Status   Status  `json:"status,omitempty"`
	Sort     SortKey `json:"sort,omitempty"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	// Fields searched by Text; empty means DefaultSearchFields.
	Fields []Field `json:"-"`
}
