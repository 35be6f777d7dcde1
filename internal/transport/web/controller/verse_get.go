package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
)

const verseDateLayout = "2006-01-02"

type VerseResponse struct {
	Date string `json:"date"`
	domain.Verse
}

// VerseGet handles GET /v1/verse?date=YYYY-MM-DD. Without a date it answers
// for the current UTC day.
type VerseGet struct {
	Now func() time.Time
}

func (c VerseGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date := time.Now().UTC()
	if c.Now != nil {
		date = c.Now().UTC()
	}

	if q := r.URL.Query(); q.Has("date") {
		parsed, err := time.Parse(verseDateLayout, q.Get("date"))
		if err != nil {
			writeError(ctx, w, "unable to parse verse date",
				fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput))
			return
		}
		date = parsed
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(ctx, w, http.StatusOK, VerseResponse{
		Date:  date.Format(verseDateLayout),
		Verse: domain.SelectVerseForDate(date),
	})
}
