package controller

import (
	"net/http"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type CommentCreateRequest struct {
	Content  string `json:"content"`
	ItemID   string `json:"itemId"`
	ItemKind string `json:"itemKind,omitempty"`
}

// CommentCreate handles POST /v1/comments.
type CommentCreate struct {
	PostCmd command.Command[command.PostCommentRequest, domain.Comment]
}

func (c CommentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CommentCreateRequest
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(ctx, w, "unable to parse comment body", err)
		return
	}

	// Without a kind the command resolves it from the item id.
	var kind domain.ContentKind
	if body.ItemKind != "" {
		var err error
		kind, err = domain.ParseContentKind(body.ItemKind)
		if err != nil {
			writeError(ctx, w, "unknown item kind", err)
			return
		}
	}

	comment, err := c.PostCmd.Execute(ctx, command.PostCommentRequest{
		UserID:   domain.UserIDFromContext(ctx),
		ItemKind: kind,
		ItemID:   body.ItemID,
		Content:  body.Content,
	})
	if err != nil {
		writeError(ctx, w, "unable to post comment", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, comment)
}
