package stats

import (
	"strings"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
)

// Aggregate tallies the whole collection in one pass. Records with an
// out-of-enum status count toward Total only.
func Aggregate(c model.Collection) model.Stats {
	st := model.Stats{
		Genres: map[string]int{},
		Total:  len(c),
	}
	for _, b := range c {
		switch b.Status {
		case model.StatusToRead:
			st.Status.ToRead++
		case model.StatusReading:
			st.Status.Reading++
		case model.StatusFinished:
			st.Status.Finished++
		}
		if r := b.RatingValue(); r >= 1 && r <= len(st.Ratings) {
			st.Ratings[r-1]++
		}
		if g := strings.TrimSpace(b.Genre); g != "" {
			st.Genres[g]++
		}
	}
	return st
}
