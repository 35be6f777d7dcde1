package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestVerseGet_ServeHTTP(t *testing.T) {
	now := time.Date(2024, 3, 10, 22, 30, 0, 0, time.UTC)

	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantDate   string
	}{
		{name: "defaults_to_today", wantStatus: http.StatusOK, wantDate: "2024-03-10"},
		{name: "explicit_date", query: "?date=2024-01-02", wantStatus: http.StatusOK, wantDate: "2024-01-02"},
		{name: "before_epoch", query: "?date=2023-12-31", wantStatus: http.StatusOK, wantDate: "2023-12-31"},
		{name: "bad_date", query: "?date=10/03/2024", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/verse"+tc.query, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			VerseGet{Now: func() time.Time { return now }}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var body VerseResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.wantDate, body.Date)

			date, err := time.Parse(verseDateLayout, tc.wantDate)
			require.NoError(t, err)
			assert.Equal(t, domain.SelectVerseForDate(date), body.Verse)
		})
	}
}
