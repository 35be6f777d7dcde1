package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/beliefted/beliefted-server/internal/datasources/mocks"
	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestRSS_ServeHTTP(t *testing.T) {
	words := []domain.ContentItem{
		{
			ID:        testItemID,
			Kind:      domain.ContentKindWord,
			Reference: "Psalm 46:10",
			Body:      "Be still, and know that I am God.",
			CreatedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
		},
	}

	cases := []struct {
		name       string
		items      []domain.ContentItem
		listErr    error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "renders_words",
			items:      words,
			wantStatus: http.StatusOK,
			wantBody:   []string{"<rss", "Psalm 46:10", "https://beliefted.example/words/" + testItemID},
		},
		{
			name:       "list_error",
			listErr:    errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockLatestContentLister(t)
			lister.EXPECT().
				ListLatestContentItems(mock.Anything, domain.ContentKindWord, domain.ContentListOptions{Page: 1, PageSize: rssItemLimit}).
				Return(tc.items, tc.listErr)

			req := httptest.NewRequest(http.MethodGet, "/rss/words", nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			RSS{
				FeedHostname: "https://beliefted.example",
				FeedPath:     "/rss/words",
				Lister:       lister,
				CacheMaxAge:  5 * time.Minute,
			}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, "max-age=300", rec.Header().Get("Cache-Control"))
			for _, want := range tc.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
