package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

// ContentItemResponse is a content item with its interaction counts and, for
// a signed-in viewer, the viewer's own interaction state.
type ContentItemResponse struct {
	domain.ContentItem
	PrayCount int   `json:"pray_count"`
	LikeCount int   `json:"like_count"`
	SaveCount int   `json:"save_count"`
	Prayed    *bool `json:"prayed,omitempty"`
	Liked     *bool `json:"liked,omitempty"`
	Saved     *bool `json:"saved,omitempty"`
}

func newContentItemResponse(item domain.ContentItem, viewerID string) ContentItemResponse {
	resp := ContentItemResponse{
		ContentItem: item,
		PrayCount:   len(item.PrayedBy),
		LikeCount:   len(item.LikedBy),
		SaveCount:   len(item.SavedBy),
	}
	if viewerID == "" {
		return resp
	}

	state := func(i domain.Interaction) *bool {
		if !item.Kind.Supports(i) {
			return nil
		}
		v := item.HasInteracted(i, viewerID)
		return &v
	}
	resp.Prayed = state(domain.InteractionPray)
	resp.Liked = state(domain.InteractionLike)
	resp.Saved = state(domain.InteractionSave)
	return resp
}

type ContentCreateRequest struct {
	Title     string `json:"title,omitempty"`
	Reference string `json:"reference,omitempty"`
	Body      string `json:"body"`
}

// ContentCreate handles POST /v1/{kind}.
type ContentCreate struct {
	CreateCmd command.Command[command.CreateContentRequest, domain.ContentItem]
}

func (c ContentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := domain.ParseContentKind(mux.Vars(r)["kind"])
	if err != nil {
		writeError(ctx, w, "unknown content kind", err)
		return
	}

	var body ContentCreateRequest
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(ctx, w, "unable to parse content body", err)
		return
	}

	userID := domain.UserIDFromContext(ctx)
	item, err := c.CreateCmd.Execute(ctx, command.CreateContentRequest{
		UserID:    userID,
		Kind:      kind,
		Title:     body.Title,
		Reference: body.Reference,
		Body:      body.Body,
	})
	if err != nil {
		writeError(ctx, w, "unable to create content", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, newContentItemResponse(item, userID))
}

// ContentGet handles GET /v1/{kind}/{item_id}.
type ContentGet struct {
	Fetcher datasources.ContentFetcher
}

func (c ContentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	kind, err := domain.ParseContentKind(vars["kind"])
	if err != nil {
		writeError(ctx, w, "unknown content kind", err)
		return
	}
	itemID, err := domain.ParseID(vars["item_id"])
	if err != nil {
		writeError(ctx, w, "invalid item id", err)
		return
	}

	item, err := c.Fetcher.FetchContentItem(ctx, kind, itemID)
	if err != nil {
		writeError(ctx, w, "unable to fetch content", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newContentItemResponse(item, domain.UserIDFromContext(ctx)))
}

type ContentListResponse struct {
	Data []ContentItemResponse `json:"data"`
}

// ContentList handles GET /v1/{kind}, newest first.
type ContentList struct {
	Lister      datasources.LatestContentLister
	CacheMaxAge time.Duration
}

func (c ContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := domain.ParseContentKind(mux.Vars(r)["kind"])
	if err != nil {
		writeError(ctx, w, "unknown content kind", err)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse pagination", err)
		return
	}

	items, err := c.Lister.ListLatestContentItems(ctx, kind, domain.ContentListOptions{
		Page:     page,
		PageSize: pageSize,
		AuthorID: r.URL.Query().Get("author_id"),
	})
	if err != nil {
		writeError(ctx, w, "unable to list content", err)
		return
	}

	viewerID := domain.UserIDFromContext(ctx)
	resp := ContentListResponse{Data: make([]ContentItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Data = append(resp.Data, newContentItemResponse(item, viewerID))
	}

	if viewerID == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(c.CacheMaxAge.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "private, no-store")
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}
