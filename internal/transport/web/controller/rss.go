package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const rssItemLimit = 50

// RSS serves the latest Words as an RSS feed.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.LatestContentLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "Beliefted Words",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Latest words shared on Beliefted",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	words, err := c.Lister.ListLatestContentItems(ctx, domain.ContentKindWord, domain.ContentListOptions{
		Page:     1,
		PageSize: rssItemLimit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch words for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, word := range words {
		title := word.Title
		if title == "" {
			title = word.Reference
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          word.ID,
			IsPermaLink: "false",
			Title:       title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/words/" + word.ID},
			Description: strings.TrimSpace(word.Body),
			Created:     word.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
