package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type CommentsListResponse struct {
	Data []domain.Comment `json:"data"`
}

// CommentsList handles GET /v1/{kind}/{item_id}/comments, oldest first.
type CommentsList struct {
	Lister datasources.CommentLister
}

func (c CommentsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	comments, err := c.Lister.ListComments(ctx, kind, itemID)
	if err != nil {
		writeError(ctx, w, "unable to list comments", err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	writeJSON(ctx, w, http.StatusOK, CommentsListResponse{Data: comments})
}
